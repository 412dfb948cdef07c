package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"blogdb/pkg/config"
	"blogdb/pkg/logger"
	"blogdb/services/blog/internal/app"
	"blogdb/services/blog/internal/entity"

	"gorm.io/gorm"
)

func main() {
	var reset bool
	flag.BoolVar(&reset, "reset", false, "Delete all posts and authors before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.NewWithOptions(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile, Console: true})
	application, err := app.New(cfg, log)
	if err != nil {
		panic(err)
	}
	defer application.Close()

	if reset {
		if !cfg.IsDevelopment() {
			panic("-reset is only allowed when APP_ENV=development")
		}
		if err := resetTables(application.DB()); err != nil {
			log.Error("Failed to reset tables: %v", err)
			panic(err)
		}
		log.Info("Tables cleared")
	}

	if err := seedDatabase(context.Background(), application, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func resetTables(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM posts").Error; err != nil {
			return err
		}
		return tx.Exec("DELETE FROM authors").Error
	})
}

type seedPost struct {
	title    string
	summary  string
	category entity.Category
}

func seedDatabase(ctx context.Context, application *app.App, log *logger.Logger) error {
	testAuthors := []struct {
		name  string
		phone string
		posts []seedPost
	}{
		{"Jane Doe", "5551234567", []seedPost{
			{"Top 5 Lighthouses Nobody Visits", "Remote coastlines, ranked.", entity.CategoryNonFiction},
			{"The Secret of the Tidewater Inn", "", entity.CategoryFiction},
		}},
		{"John Roe", "", []seedPost{
			{"You Won't Believe What the Cat Did", "A short story about a long nap.", entity.CategoryFiction},
		}},
		{"Ada Quill", "0123456789", []seedPost{
			{"Guess Which Compiler Is Fastest", "", entity.CategoryNonFiction},
			{"Top 10 Secrets of Sourdough", "Flour, water, patience.", entity.CategoryNonFiction},
		}},
	}

	for i, data := range testAuthors {
		var phone *string
		if data.phone != "" {
			phone = &data.phone
		}

		author, err := application.Authors.CreateAuthor(ctx, data.name, phone)
		var vErr *entity.ValidationError
		switch {
		case errors.As(err, &vErr) && vErr.Message == entity.MsgNameNotUnique:
			log.Info("Author %s already exists, skipping", data.name)
			continue
		case err != nil:
			return fmt.Errorf("failed to create author %s: %w", data.name, err)
		}
		log.Info("Created author: %s (id=%d)", author.Name, author.ID)

		for j, p := range data.posts {
			in := entity.PostInput{
				Title:    p.title,
				Content:  sampleContent(i*10 + j),
				Category: string(p.category),
				AuthorID: &author.ID,
			}
			if p.summary != "" {
				in.Summary = &p.summary
			}

			post, err := application.Posts.CreatePost(ctx, in)
			if err != nil {
				log.Error("Failed to create post %q for %s: %v", p.title, author.Name, err)
				continue
			}
			log.Info("Created post: %q (id=%d)", post.Title, post.ID)
		}
	}

	return nil
}

func sampleContent(seed int) string {
	sentences := []string{
		"The morning started like any other, with a kettle and a plan.",
		"Nobody expected the notes in the margin to matter this much.",
		"By noon the whole street had an opinion about it.",
		"Some of those opinions were even based on facts.",
		"What follows is the part everyone keeps asking about.",
	}

	var b strings.Builder
	for i := 0; b.Len() < entity.MinContentLength; i++ {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(sentences[(seed+i)%len(sentences)])
	}
	return b.String()
}
