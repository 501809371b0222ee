package main

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"

	"github.com/Nikshey/TWINSKILL/application/ports/outbound"
	"github.com/Nikshey/TWINSKILL/application/services"
	"github.com/Nikshey/TWINSKILL/config"
	"github.com/Nikshey/TWINSKILL/infrastructure/adapters"
	"github.com/Nikshey/TWINSKILL/infrastructure/gin_interface/controllers"
	"github.com/Nikshey/TWINSKILL/middleware"
)

func main() {
	serverConfig := config.GetServerConfig()
	didConfig := config.GetDIDConfig()
	dynamoConfig := config.GetDynamoConfig()
	uploadsConfig := config.GetUploadsConfig()

	s3Config, err := config.GetS3Config()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get s3 config")
	}

	authConfig, err := config.GetAuthConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get auth config")
	}

	if didConfig.ApiKey == "" {
		log.Warn().Msg("DID_API_KEY not set, talk requests will use the fallback response")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(120, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	var sess *session.Session
	if dynamoConfig != nil || s3Config != nil {
		sess = session.Must(session.NewSessionWithOptions(session.Options{
			SharedConfigState: session.SharedConfigEnable,
		}))
	}

	var userStore outbound.UserStorePort
	if dynamoConfig != nil {
		userStore = adapters.NewDynamoUserStore(zeroLogger, dynamodb.New(sess), dynamoConfig)
		log.Info().Str("table", dynamoConfig.UsersTableName).Msg("Using DynamoDB user store")
	} else {
		userStore = adapters.NewMemoryUserStore()
		log.Warn().Msg("DYNAMO_USERS_TABLE not set, registration will use in-memory storage")
	}

	var photoStore outbound.PhotoStorePort
	serveLocalUploads := s3Config == nil
	if s3Config != nil {
		photoStore = adapters.NewS3PhotoStore(s3.New(sess, aws.NewConfig().WithRegion(s3Config.Region)), s3Config)
	} else {
		photoStore, err = adapters.NewLocalPhotoStore(zeroLogger, uploadsConfig)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create local photo store")
		}
	}

	contentFetcher := adapters.NewContentFetcher(zeroLogger)
	faceAnalyzer := adapters.NewBrightnessFaceAnalyzer(zeroLogger)
	nameClassifier := adapters.NewNameGenderClassifier()
	talkClient := adapters.NewDIDTalkClient(contentFetcher, didConfig, zeroLogger)
	avatarRegistrar := adapters.NewDIDAvatarRegistrar(contentFetcher, didConfig, zeroLogger)

	authHandler := middleware.NewAuthHandler(authConfig)

	voiceResolver := services.NewVoiceProfileResolver(nameClassifier)
	talkOrchestrator := services.NewTalkOrchestrator(zeroLogger, userStore, voiceResolver, talkClient)
	avatarCreator := services.NewAvatarCreator(zeroLogger, userStore, photoStore, faceAnalyzer, nameClassifier, avatarRegistrar)
	accountService := services.NewAccountService(zeroLogger, userStore, photoStore, faceAnalyzer, workerPool, authHandler)

	accountController := controllers.NewAccountController(zeroLogger, accountService, userStore)
	avatarController := controllers.NewAvatarController(zeroLogger, avatarCreator)
	talkController := controllers.NewTalkController(zeroLogger, talkOrchestrator)

	router := gin.Default()

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	router.Use(authHandler.AuthMiddleware())

	if serveLocalUploads {
		router.Static("/uploads", uploadsConfig.Dir)
	}

	accountController.RegisterRoutes(router)
	avatarController.RegisterRoutes(router)
	talkController.RegisterRoutes(router)

	if err := router.Run(serverConfig.Addr()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
