package planner_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"tripgenie/internal/api/controllers"
	"tripgenie/internal/services"
	"tripgenie/pkg/utils"
)

var Module = fx.Provide(
	ProvideModelClient,
	ProvideComposerService,
	ProvidePlannerService,
	ProvideTripController)

// ModelClientConfig holds configuration for the generative-model client.
type ModelClientConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideModelClient creates a model client based on environment variables.
func ProvideModelClient(lc fx.Lifecycle) (utils.ModelClientInterface, error) {
	config := getModelClientConfig()

	log.Printf("Initializing %s model client with model: %s", config.Provider, config.Model)

	client, err := utils.NewModelClient(config.Provider, config.APIKey, config.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create model client: %w", err)
	}

	lc.Append(fx.StopHook(client.Close))
	return client, nil
}

func ProvideComposerService() services.ComposerServiceInterface {
	return services.NewComposerService()
}

func ProvidePlannerService(
	retriever services.RetrieverServiceInterface,
	composer services.ComposerServiceInterface,
	model utils.ModelClientInterface,
) services.PlannerServiceInterface {
	return services.NewPlannerService(retriever, composer, model)
}

func ProvideTripController(plannerService services.PlannerServiceInterface) *controllers.TripController {
	return controllers.NewTripController(plannerService)
}

// getModelClientConfig reads configuration from environment variables.
func getModelClientConfig() ModelClientConfig {
	provider := getEnvWithDefault("MODEL_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("MODEL_NAME", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using the OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("MODEL_NAME", "gemini-2.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using the Gemini provider")
		}
	}

	return ModelClientConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
