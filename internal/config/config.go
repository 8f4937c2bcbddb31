package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	DeepgramAPIKey    string
	GroqAPIKey        string
	GroqModel         string
	ElevenLabsAPIKey  string
	ElevenLabsVoiceID string
	StatusEndpoint    string
}

// Load reads environment variables, with a .env file as fallback, and
// returns Config. Missing provider keys are warnings, not errors: the
// orchestrator degrades to the parts that are configured.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded:", err)
	}

	deepgramKey := os.Getenv("DEEPGRAM_API_KEY")
	if deepgramKey == "" {
		log.Println("Warning: DEEPGRAM_API_KEY not set - transcription and speech will not work")
	}

	groqKey := os.Getenv("GROQ_API_KEY")
	if groqKey == "" {
		log.Println("Warning: GROQ_API_KEY not set - the agent will not work")
	}

	return Config{
		DeepgramAPIKey:    deepgramKey,
		GroqAPIKey:        groqKey,
		GroqModel:         os.Getenv("GROQ_MODEL"),
		ElevenLabsAPIKey:  os.Getenv("ELEVENLABS_API_KEY"),
		ElevenLabsVoiceID: os.Getenv("ELEVENLABS_VOICE_ID"),
		StatusEndpoint:    os.Getenv("STATUS_ENDPOINT"),
	}
}
