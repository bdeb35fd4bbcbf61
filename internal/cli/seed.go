package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"blog-service/internal/domain"
	"blog-service/internal/logger"
	"blog-service/internal/repository"
	"blog-service/internal/service"
	"blog-service/internal/validator"
)

// SeedOptions holds flags for the seed command.
type SeedOptions struct {
	Users int
	Posts int
	Seed  int64
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create fake users and posts",
		Long: `Create fake users and posts through the post workflow, so slugs
and publish state are assigned exactly as for API requests.

Example:
  blog seed --users 3 --posts 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rootOpts.Config()
			be, err := openBackend(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer be.close()

			blobs, _, err := openBlobStore(cfg)
			if err != nil {
				return err
			}
			workflow := service.NewPostWorkflow(be.posts, blobs, validator.NewValidator(cfg.MaxImageBytes), nil)

			created, err := seed(cmd.Context(), be.users, workflow, gofakeit.New(opts.Seed), *opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d users and %d posts\n", opts.Users, created)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Users, "users", 3, "number of users to create")
	cmd.Flags().IntVar(&opts.Posts, "posts", 10, "number of posts to create")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "random seed (0 picks one)")

	return cmd
}

// seed creates opts.Users users and spreads opts.Posts posts across them.
// A failed post is logged and skipped; a failed user aborts.
func seed(ctx context.Context, users repository.UserRepository, workflow *service.PostWorkflow, faker *gofakeit.Faker, opts SeedOptions) (int, error) {
	if opts.Users < 1 {
		return 0, fmt.Errorf("at least one user is required")
	}

	authors := make([]string, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user := &domain.User{
			ID:        uuid.NewString(),
			Email:     faker.Email(),
			Name:      faker.Name(),
			CreatedAt: time.Now().UTC(),
		}
		if err := users.Create(ctx, user); err != nil {
			return 0, fmt.Errorf("create user %d: %w", i+1, err)
		}
		authors = append(authors, user.ID)
	}

	created := 0
	for i := 0; i < opts.Posts; i++ {
		fields := domain.PostFields{
			Title:     faker.Sentence(faker.Number(3, 8)),
			Content:   faker.Paragraph(3, 5, 20, "\n\n"),
			Published: faker.Bool(),
		}
		post, err := workflow.Create(ctx, authors[i%len(authors)], fields, nil)
		if err != nil {
			logger.Error("Failed to seed post",
				slog.Int("index", i+1),
				slog.String("title", fields.Title),
				slog.String("error", err.Error()))
			continue
		}
		created++
		logger.Debug("Seeded post",
			slog.String("post_id", post.ID),
			slog.String("slug", post.Slug))
	}

	return created, nil
}
