package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"sap-agent/internal/di"
	"sap-agent/internal/infrastructure/env"
)

func main() {
	envService := env.NewEnvService()

	fmt.Println("\nEnter a task for the agent:")
	reader := bufio.NewReader(os.Stdin)
	task, err := reader.ReadString('\n')
	if err != nil {
		log.Fatal("failed to read input: ", err)
	}
	task = strings.TrimSpace(task)
	if task == "" {
		log.Fatal("empty task")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	runID := uuid.NewString()[:8]

	container, err := di.NewContainer(di.Config{
		OpenRouterAPIKey: envService.MustGet("OPENROUTER_API_KEY"),
		OpenRouterModel:  envService.MustGet("OPENROUTER_MODEL_NAME"),
		LogLevel:         envService.GetDefault("LOG_LEVEL", "info"),
		RunName:          runID + "_" + task,
		ConnectionIndex:  envService.GetInt("SAP_CONNECTION_INDEX", 0),
		SessionIndex:     envService.GetInt("SAP_SESSION_INDEX", 0),
		OutlookEnabled:   envService.GetBool("OUTLOOK_ENABLED", false),
		MaxIterations:    envService.GetInt("MAX_ITERATIONS", 0),
	})
	if err != nil {
		log.Fatalf("initialization failed: %v", err)
	}
	defer container.Close()

	container.Logger.Info("Task started", "task", task, "run_id", runID)
	fmt.Println("\nAgent is working...")

	result, err := container.TaskExecutor.Execute(ctx, task)
	if err != nil {
		container.Logger.Error("Task failed", "error", err)
		fmt.Printf("\nExecution failed: %v\n", err)
		container.Close()
		os.Exit(1)
	}

	container.Logger.Info("Task completed", "iterations", result.Iterations)
	fmt.Println("\nFINAL ANSWER:")
	fmt.Println(result.FinalAnswer)
}
