package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"pcblab/internal/clock"
	"pcblab/internal/models"
	"pcblab/internal/scanner"
)

var scanUpload string

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run a simulated board scan",
	Long:  "Run a capture scan, or an upload scan of an image file with --upload, and print the analysis result.",
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanUpload, "upload", "", "analyze an image file instead of a camera capture")
}

func runScan(cmd *cobra.Command, args []string) error {
	trigger := scanner.Trigger{Mode: models.ScanModeCapture}
	if scanUpload != "" {
		info, err := os.Stat(scanUpload)
		if err != nil {
			return fmt.Errorf("reading upload: %w", err)
		}
		trigger = scanner.Trigger{
			Mode: models.ScanModeUpload,
			File: &scanner.Upload{Name: filepath.Base(scanUpload), SizeBytes: info.Size()},
		}
	}

	sim := scanner.New(cfg, clock.New())
	job, err := sim.Start(trigger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("Analyzing PCB (%s)...", trigger.Mode)))

	result, err := job.Wait(cmd.Context())
	if err != nil {
		fmt.Fprintln(out, errorStyle.Render("Scan failed: "+err.Error()))
		return err
	}

	printScanResult(cmd, result)
	return nil
}

func printScanResult(cmd *cobra.Command, r *models.ScanResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render("Analysis Complete"))
	fmt.Fprintln(out, field("PCB type", r.PCBType))
	fmt.Fprintln(out, field("Components", fmt.Sprint(r.ComponentsFound)))
	fmt.Fprintln(out, field("Faults", fmt.Sprint(r.FaultsDetected)))
	fmt.Fprintln(out, field("Confidence", fmt.Sprintf("%.1f%%", r.Confidence)))
	fmt.Fprintln(out, field("Processing time", fmt.Sprintf("%.1fs", r.ProcessingTimeSeconds)))
	fmt.Fprintln(out, field("Blocks", strings.Join(r.FunctionalBlocks, ", ")))
	if r.Upload != nil {
		fmt.Fprintln(out, field("File", fmt.Sprintf("%s (%d bytes)", r.Upload.FileName, r.Upload.SizeBytes)))
	}
	fmt.Fprintln(out, field("Timestamp", r.Timestamp))
}
