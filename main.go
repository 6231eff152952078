package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"digitalagency/cloudinary"
	"digitalagency/config"
	"digitalagency/database"
	"digitalagency/handlers"
	"digitalagency/mailer"
	repository "digitalagency/repositories"
	routes "digitalagency/routes"
	services "digitalagency/services"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	production := cfg.Environment == "production"

	clientOptions := options.Client().ApplyURI(cfg.MongoURI)
	client, err := mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			log.Fatal("Failed to disconnect from MongoDB:", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}

	fmt.Println("Successfully connected to MongoDB!")

	db := client.Database(cfg.MongoDB)

	fmt.Println("Creating database indexes...")
	if err := database.CreateIndexes(db); err != nil {
		log.Printf("Warning: Failed to create indexes: %v", err)
	}

	mail := mailer.New(cfg.Mail)
	images := cloudinary.New(cfg.Cloudinary)

	projectRepo := repository.NewProjectRepository(db)
	clientRepo := repository.NewClientRepository(db)
	contactRepo := repository.NewContactRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	clientProjectRepo := repository.NewClientProjectRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	fileRepo := repository.NewFileRepository(db)
	teamMemberRepo := repository.NewTeamMemberRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	activityService := services.NewActivityService(activityRepo)
	projectService := services.NewProjectService(projectRepo, images)
	clientService := services.NewClientService(clientRepo, images)
	contactService := services.NewContactService(contactRepo)
	subscriptionService := services.NewSubscriptionService(subscriptionRepo)
	dashboardService := services.NewDashboardService(
		projectRepo, clientRepo, contactRepo, subscriptionRepo,
		clientProjectRepo, messageRepo, fileRepo,
	)
	clientProjectService := services.NewClientProjectService(
		clientProjectRepo, activityService, mail, cfg.FrontendURL,
	)
	portalService := services.NewPortalService(
		clientProjectRepo, messageRepo, fileRepo, activityService, mail, cfg.FrontendURL,
	)
	teamMemberService := services.NewTeamMemberService(teamMemberRepo, activityService)

	mux := routes.Setup(routes.Handlers{
		Project:       handlers.NewProjectHandler(projectService, production),
		Client:        handlers.NewClientHandler(clientService, production),
		Contact:       handlers.NewContactHandler(contactService, production),
		Subscription:  handlers.NewSubscriptionHandler(subscriptionService, production),
		Dashboard:     handlers.NewDashboardHandler(dashboardService, contactService, subscriptionService, production),
		ClientProject: handlers.NewClientProjectHandler(clientProjectService, production),
		Portal:        handlers.NewPortalHandler(portalService, production),
		TeamMember:    handlers.NewTeamMemberHandler(teamMemberService, production),
		Activity:      handlers.NewActivityHandler(activityService, production),
	}, cfg.AdminToken, production)

	addr := fmt.Sprintf(":%d", cfg.Port)
	fmt.Printf("Server starting on port %d\n", cfg.Port)
	log.Fatal(http.ListenAndServe(addr, mux))
}
