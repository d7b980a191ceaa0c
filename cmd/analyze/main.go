package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"balance_insight/pkg/core/agent"
	"balance_insight/pkg/core/calc"
	"balance_insight/pkg/core/export"
	"balance_insight/pkg/core/ingest"
	"balance_insight/pkg/core/prompt"
	"balance_insight/pkg/core/standardize"
	"balance_insight/pkg/core/summary"
	"balance_insight/pkg/core/validate"
	"balance_insight/pkg/models"
)

func main() {
	godotenv.Load()
	prompt.RegisterBuiltins()

	var (
		inputPath  = flag.String("input", "", "balance sheet file (.csv or .html)")
		exportPath = flag.String("export", "", "write the analysis record CSV here")
		ratiosPath = flag.String("ratios", "", "write the per-period ratio table CSV here")
		narrative  = flag.Bool("narrative", false, "generate an LLM narrative summary")
		assist     = flag.Bool("assist", false, "use the LLM to classify unrecognized accounts")
	)
	flag.Parse()

	if *inputPath == "" {
		fmt.Println("Usage: analyze -input <file.csv|file.html> [-export out.csv] [-ratios out.csv] [-narrative] [-assist]")
		os.Exit(1)
	}

	raw, err := loadTable(*inputPath)
	if err != nil {
		fmt.Printf("[FATAL] Failed to read %s: %v\n", *inputPath, err)
		os.Exit(1)
	}
	fmt.Printf("[Analyze] Loaded %d rows from %s\n", raw.RowCount(), *inputPath)

	ctx := context.Background()
	pipeline := standardize.Pipeline{}
	var agentMgr *agent.Manager
	if *narrative || *assist {
		agentMgr = loadAgents()
	}
	if *assist && agentMgr != nil {
		pipeline.Assist = agentMgr.GetProvider("classifier")
	}

	result := pipeline.Run(ctx, raw)
	fmt.Printf("[Analyze] Detected format: %s\n", result.Format.FormatType)
	if result.Unprojected != nil {
		fmt.Println("[Analyze] Could not standardize the table; amounts were cleaned but no analysis is possible")
		for _, col := range result.Unprojected.Columns {
			fmt.Printf("  %s: %v\n", col.Name, col.Cells)
		}
		os.Exit(1)
	}
	table := result.Table

	asRaw := table.AsRaw()
	validation := validate.CheckStandard(&asRaw)
	if !validation.Valid {
		fmt.Println("[Analyze] Validation issues:")
		for _, issue := range validation.Issues {
			fmt.Printf("  - %s\n", issue)
		}
	}

	analysis := calc.Analyze(&table)
	if len(analysis.Ratios) == 0 {
		fmt.Println("[FATAL] No amount columns found, nothing to analyze")
		os.Exit(1)
	}

	if col := table.LatestColumn(); col != "" {
		if check := validate.CheckBalance(&table, col, 0.01); !check.IsBalanced {
			fmt.Printf("[Analyze] Balance equation off by %.2f (A=%.2f, L+E=%.2f)\n",
				check.Difference, check.TotalAssets, check.ComputedAssets)
		}
	}

	if *narrative && agentMgr != nil {
		gen := summary.NewGenerator(agentMgr.GetProvider("summarizer"))
		fmt.Println(gen.Generate(ctx, analysis))
	} else {
		fmt.Println(summary.ExecutiveSummary(analysis))
	}

	if *exportPath != "" {
		if err := writeCSV(*exportPath, func(f *os.File) error {
			return export.WriteReportCSV(f, export.NewReportRecord(analysis, time.Now()))
		}); err != nil {
			fmt.Printf("[FATAL] Export failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("[Analyze] Report record written to %s\n", *exportPath)
	}

	if *ratiosPath != "" {
		if err := writeCSV(*ratiosPath, func(f *os.File) error {
			return export.WriteRatioTableCSV(f, analysis)
		}); err != nil {
			fmt.Printf("[FATAL] Ratio export failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("[Analyze] Ratio table written to %s\n", *ratiosPath)
	}
}

func loadTable(path string) (*models.RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return ingest.ReadHTML(f)
	default:
		return ingest.ReadCSV(f)
	}
}

func loadAgents() *agent.Manager {
	configData, _ := os.ReadFile("config/models.yaml")
	var agentCfg agent.Config
	yaml.Unmarshal(configData, &agentCfg)
	return agent.NewManager(agentCfg)
}

func writeCSV(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}
