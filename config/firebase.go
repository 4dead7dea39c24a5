package config

import (
	"context"
	"encoding/base64"
	"log"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	gcs "cloud.google.com/go/storage"
)

var FirebaseApp *firebase.App

// InitFirebase initializes the Firebase Admin SDK. The SDK is optional: when no
// credentials are configured, login skips the Firebase Auth check and uploads
// go to local disk instead of the storage bucket.
func InitFirebase() {
	ctx := context.Background()

	projectID := os.Getenv("FIREBASE_PROJECT_ID")
	fbConfig := &firebase.Config{
		ProjectID:     projectID,
		StorageBucket: os.Getenv("FIREBASE_STORAGE_BUCKET"),
	}

	// Check for base64 encoded credentials first
	if base64Creds := os.Getenv("FIREBASE_CREDENTIALS_BASE64"); base64Creds != "" {
		log.Printf("Using Firebase credentials from base64 environment variable")
		decoded, err := base64.StdEncoding.DecodeString(base64Creds)
		if err != nil {
			log.Fatalf("Error decoding base64 credentials: %v", err)
		}

		app, err := firebase.NewApp(ctx, fbConfig, option.WithCredentialsJSON(decoded))
		if err != nil {
			log.Fatalf("error initializing firebase app: %v\n", err)
		}
		FirebaseApp = app
		return
	}

	// Fallback to file-based credentials
	credFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credFile == "" {
		log.Println("Warning: Firebase credentials not configured; auth verification and bucket uploads disabled")
		return
	}

	log.Printf("Using Firebase credentials file: %s", credFile)

	app, err := firebase.NewApp(ctx, fbConfig, option.WithCredentialsFile(credFile))
	if err != nil {
		log.Fatalf("error initializing firebase app: %v\n", err)
	}
	FirebaseApp = app
}

// FirebaseAuth returns the Firebase Auth client, or nil when the SDK is not
// configured.
func FirebaseAuth(ctx context.Context) *auth.Client {
	if FirebaseApp == nil {
		return nil
	}
	client, err := FirebaseApp.Auth(ctx)
	if err != nil {
		log.Printf("Error getting Firebase Auth client: %v", err)
		return nil
	}
	return client
}

// StorageBucket returns the default storage bucket handle, or nil when the SDK
// or bucket is not configured.
func StorageBucket(ctx context.Context) *gcs.BucketHandle {
	if FirebaseApp == nil {
		return nil
	}
	storageClient, err := FirebaseApp.Storage(ctx)
	if err != nil {
		log.Printf("Error getting Firebase Storage client: %v", err)
		return nil
	}
	bucket, err := storageClient.DefaultBucket()
	if err != nil {
		log.Printf("Error getting default storage bucket: %v", err)
		return nil
	}
	return bucket
}
