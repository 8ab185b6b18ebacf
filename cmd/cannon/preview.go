package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/kitty-cannon/internal/ballistics"
)

var (
	previewAim      aimFlags
	flagSamples     int
	flagSpacing     float64
	flagPreviewYAML bool
	flagFullArc     bool
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the predicted arc for an aim",
	Long: `Sample the trajectory the aiming preview would draw, using the same
acceleration as a live shell (gravity plus the wind drawn from --seed).
The arc stops at the first sample on or below the ground unless --full.

Examples:
  cannon preview
  cannon preview --elevation 60 --samples 20 --spacing 0.25
  cannon preview --yaml > arc.yaml`,
	Args: cobra.NoArgs,
	Run:  runPreview,
}

func init() {
	previewAim.register(previewCmd)
	previewCmd.Flags().IntVar(&flagSamples, "samples", 0, "Number of samples (default from config)")
	previewCmd.Flags().Float64Var(&flagSpacing, "spacing", 0, "Seconds between samples (default from config)")
	previewCmd.Flags().BoolVar(&flagPreviewYAML, "yaml", false, "Write the arc as YAML")
	previewCmd.Flags().BoolVar(&flagFullArc, "full", false, "Keep samples below the ground")
}

// previewDoc is the YAML form of a sampled arc.
type previewDoc struct {
	Power     float64        `yaml:"power"`
	Elevation float64        `yaml:"elevation"`
	Yaw       float64        `yaml:"yaw"`
	Spacing   float64        `yaml:"spacing"`
	Wind      [3]float64     `yaml:"wind,flow"`
	Points    []previewPoint `yaml:"points"`
}

type previewPoint struct {
	T float64 `yaml:"t"`
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func runPreview(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	barrel := previewAim.build(cmd, cfg.Cannon)
	wind := roundWind(cfg)

	pv := ballistics.Preview{
		Origin:       barrel.MuzzlePosition(),
		Speed:        barrel.Power(),
		ElevationDeg: barrel.Elevation(),
		YawDeg:       barrel.Yaw(),
		Acceleration: cfg.ToBallistics(wind).Acceleration(),
		Count:        cfg.Preview.Samples,
		Spacing:      cfg.Preview.Spacing,
	}
	if cmd.Flags().Changed("samples") {
		pv.Count = flagSamples
	}
	if cmd.Flags().Changed("spacing") {
		pv.Spacing = flagSpacing
	}
	if !(pv.Spacing > 0) {
		fail("--spacing must be positive")
	}

	samples := ballistics.Sample(pv)
	if !flagFullArc && cfg.Collision.UseGroundPlane {
		samples = ballistics.TruncateAtGround(samples, cfg.Collision.GroundHeight)
	}
	logger.Debug("sampled preview", "samples", len(samples), "requested", pv.Count)

	if flagPreviewYAML {
		doc := previewDoc{
			Power:     pv.Speed,
			Elevation: pv.ElevationDeg,
			Yaw:       pv.YawDeg,
			Spacing:   pv.Spacing,
			Wind:      [3]float64{wind.X, wind.Y, wind.Z},
			Points:    make([]previewPoint, len(samples)),
		}
		for i, s := range samples {
			doc.Points[i] = previewPoint{T: float64(i) * pv.Spacing, X: s.X, Y: s.Y, Z: s.Z}
		}
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			fail("encoding preview: %v", err)
		}
		if err := enc.Close(); err != nil {
			fail("encoding preview: %v", err)
		}
		return
	}

	fmt.Println(previewHeader(pv))
	fmt.Println()
	fmt.Printf("  %6s  %9s  %9s  %9s\n", "t (s)", "x (m)", "y (m)", "z (m)")
	fmt.Printf("  %6s  %9s  %9s  %9s\n", "-----", "-----", "-----", "-----")
	for i, s := range samples {
		fmt.Printf("  %6.2f  %9.2f  %9.2f  %9.2f\n", float64(i)*pv.Spacing, s.X, s.Y, s.Z)
	}
}

func previewHeader(pv ballistics.Preview) string {
	return fmt.Sprintf("Preview: %.1f m/s @ %.0f°, yaw %.0f°, %d samples every %.2fs",
		pv.Speed, pv.ElevationDeg, pv.YawDeg, pv.Count, pv.Spacing)
}
