package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/subassign/portal/assignment"
	"github.com/subassign/portal/conf"
	"github.com/subassign/portal/filestore"
	"github.com/subassign/portal/http"
	"github.com/subassign/portal/submission"
	"github.com/subassign/portal/user"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	jwtKey := os.Getenv("JWT_KEY")
	if jwtKey == "" {
		slog.Error("JWT_KEY is not set")
		os.Exit(1)
	}

	userRepo, assignmentRepo, submRepo := buildRepos()
	files := buildFileStore()

	userSrvc := user.NewUserSrvc(userRepo)
	assignmentSrvc := assignment.NewAssignmentSrvc(assignmentRepo)
	submSrvc := submission.NewSubmissionSrvc(submRepo, assignmentSrvc, files)

	httpServer := http.NewHttpServer(userSrvc, assignmentSrvc, submSrvc, []byte(jwtKey))

	address := os.Getenv("HTTP_ADDRESS")
	if address == "" {
		address = ":8080"
	}
	log.Printf("Starting server on %s", address)
	err := httpServer.Start(address)
	log.Printf("Server stopped with error: %v", err)
}

func buildRepos() (user.Repo, assignment.Repo, submission.Repo) {
	if os.Getenv("STORAGE_BACKEND") != "postgres" {
		slog.Info("using in-memory storage")
		return user.NewInMemRepo(), assignment.NewInMemRepo(), submission.NewInMemRepo()
	}

	pool, err := pgxpool.New(context.Background(), conf.GetPgConnStrFromEnv())
	if err != nil {
		slog.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	return user.NewPgRepo(pool), assignment.NewPgRepo(pool), submission.NewPgRepo(pool)
}

func buildFileStore() filestore.FileStore {
	if os.Getenv("FILE_STORE") == "s3" {
		region := os.Getenv("S3_REGION")
		bucket := os.Getenv("S3_BUCKET")
		store, err := filestore.NewS3Store(region, bucket)
		if err != nil {
			slog.Error("failed to set up S3 file store", "error", err)
			os.Exit(1)
		}
		return store
	}

	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	store, err := filestore.NewLocalStore(dir)
	if err != nil {
		slog.Error("failed to set up local file store", "error", err)
		os.Exit(1)
	}
	return store
}
