package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"balance_insight/pkg/api/analyze"
	"balance_insight/pkg/api/config"
	apisummary "balance_insight/pkg/api/summary"
	"balance_insight/pkg/core/agent"
	"balance_insight/pkg/core/prompt"
	"balance_insight/pkg/core/store"
)

var agentMgr *agent.Manager

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize Prompt Library. Built-ins first, a prompt directory on
	// disk overrides them by ID.
	prompt.RegisterBuiltins()

	// Determine resources path (relative to executable or working directory)
	resourcesPath := "resources"
	if _, err := os.Stat(resourcesPath); os.IsNotExist(err) {
		// Try from executable directory
		exePath, _ := os.Executable()
		resourcesPath = filepath.Join(filepath.Dir(exePath), "resources")
	}
	if err := prompt.LoadFromDirectory(resourcesPath); err != nil {
		fmt.Printf("[WARNING] Failed to load prompt library: %v\n", err)
		fmt.Println("  Falling back to built-in prompts")
	} else {
		fmt.Printf("[PROMPT] Loaded %d prompts from %s\n", prompt.Get().Count(), resourcesPath)
	}

	// Initialize manager from config
	configData, _ := os.ReadFile("config/models.yaml")
	var agentCfg agent.Config
	yaml.Unmarshal(configData, &agentCfg)
	agentMgr = agent.NewManager(agentCfg)

	// Persistence is optional. Without DATABASE_URL the analyze endpoint
	// still works, reports just are not stored.
	var repo *store.ReportRepo
	if err := store.InitDB(context.Background()); err != nil {
		fmt.Printf("[WARNING] Report persistence disabled: %v\n", err)
	} else {
		repo = store.NewReportRepo()
		defer store.Close()
	}

	// Config endpoints
	configHandler := config.NewHandler(agentMgr)
	http.HandleFunc("/api/config", configHandler.HandleConfig)
	http.HandleFunc("/api/config/switch", configHandler.HandleSwitch)

	// Analysis pipeline endpoint
	analyzeHandler := analyze.NewHandler(agentMgr, repo)
	http.HandleFunc("/api/analyze", analyzeHandler.HandleAnalyze)

	// Narrative and stored report endpoints
	reportHandler := apisummary.NewHandler(agentMgr, repo)
	http.HandleFunc("/api/summary", reportHandler.HandleSummary)
	if repo != nil {
		http.HandleFunc("/api/report", reportHandler.HandleReport)
		http.HandleFunc("/api/report/export", reportHandler.HandleExport)
		http.HandleFunc("/api/reports", reportHandler.HandleRecent)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("API server starting on :%s...\n", port)
	fmt.Println("  - GET  /api/config")
	fmt.Println("  - POST /api/config/switch")
	fmt.Println("  - POST /api/analyze")
	fmt.Println("  - POST /api/summary")
	if repo != nil {
		fmt.Println("  - GET  /api/report?id=<uuid>")
		fmt.Println("  - GET  /api/report/export?id=<uuid>")
		fmt.Println("  - GET  /api/reports")
	}

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
