package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/loaders"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

// options holds the command line configuration
type options struct {
	workers   int
	format    string
	sceneName string
	outDir    string
	reference string
}

func main() {
	// Parse command line flags
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = number of logical CPUs)")
	format := flag.String("format", "png", "Output image format: png, bmp or tiff")
	sceneName := flag.String("scene", "", "Render a built-in scene instead of scene files: "+strings.Join(scene.BuiltinSceneNames(), ", "))
	outDir := flag.String("out", "", "Directory for output images (default: next to each input)")
	reference := flag.String("reference", "", "Reference image to compare the render against")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help || (flag.NArg() == 0 && *sceneName == "") {
		printUsage()
		return
	}

	opts := options{
		workers:   *workers,
		format:    *format,
		sceneName: *sceneName,
		outDir:    *outDir,
		reference: *reference,
	}

	logger := renderer.NewDefaultLogger()
	if info, err := renderer.GetSystemInfo(); err == nil {
		logger.Printf("System: %s\n", info)
	}

	if err := run(opts, flag.Args(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Ray Caster")
	fmt.Println("Usage: raycaster [options] <scene.xml | directory>...")
	fmt.Println()
	fmt.Println("Each scene file is rendered to <scene file>.<format>; directories are")
	fmt.Println("searched for *.xml scene files.")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Built-in scenes:")
	for _, info := range scene.ListBuiltinScenes() {
		fmt.Printf("  %-10s - %s\n", info.ID, info.Description)
	}
}

// renderJob pairs a scene source with the image it is written to
type renderJob struct {
	source string // Built-in scene name or scene file path
	output string
}

// run renders every job described by the options and inputs. Failures of
// individual files are logged and the remaining files are still rendered.
func run(opts options, inputs []string, logger core.Logger) error {
	ext, err := loaders.FormatExtension(opts.format)
	if err != nil {
		return err
	}

	jobs, err := collectJobs(opts, inputs, ext)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return fmt.Errorf("no scene files found")
	}
	if opts.reference != "" && len(jobs) != 1 {
		return fmt.Errorf("-reference requires exactly one scene, got %d", len(jobs))
	}

	if opts.outDir != "" {
		if err := os.MkdirAll(opts.outDir, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}

	failed := 0
	for _, job := range jobs {
		if err := renderOne(job, opts, logger); err != nil {
			logger.Printf("Error rendering %s: %v\n", job.source, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scenes failed", failed, len(jobs))
	}
	return nil
}

// collectJobs expands the inputs into render jobs
func collectJobs(opts options, inputs []string, ext string) ([]renderJob, error) {
	var jobs []renderJob

	if opts.sceneName != "" {
		output := opts.sceneName + ext
		if opts.outDir != "" {
			output = filepath.Join(opts.outDir, output)
		}
		jobs = append(jobs, renderJob{source: opts.sceneName, output: output})
	}

	for _, input := range inputs {
		files, err := scene.DiscoverSceneFiles(input)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			jobs = append(jobs, renderJob{source: file, output: outputPath(file, opts.outDir, ext)})
		}
	}

	return jobs, nil
}

// outputPath names the image for a scene file: the input path plus the
// format extension, optionally moved into outDir
func outputPath(input, outDir, ext string) string {
	if outDir == "" {
		return input + ext
	}
	return filepath.Join(outDir, filepath.Base(input)+ext)
}

// createScene resolves a built-in scene name or loads a scene file
func createScene(source string) (*scene.Scene, error) {
	if source == "" {
		return nil, fmt.Errorf("scene name cannot be empty")
	}
	if strings.EqualFold(filepath.Ext(source), scene.SceneFileExt) {
		return loaders.LoadScene(source)
	}
	return scene.NewBuiltinScene(source)
}

func renderOne(job renderJob, opts options, logger core.Logger) error {
	logger.Printf("Rendering %s...\n", job.source)

	s, err := createScene(job.source)
	if err != nil {
		return err
	}
	logger.Printf("Scene: %d surfaces, %d lights\n", s.GetSurfaceCount(), len(s.Lights))

	config := renderer.DefaultRenderConfig()
	if opts.workers > 0 {
		config.NumWorkers = opts.workers
	}

	img, stats, err := renderer.Render(s, config, logger)
	if err != nil {
		return err
	}
	if stats.FailedPixels > 0 {
		logger.Printf("Warning: %d pixels failed to render\n", stats.FailedPixels)
	}

	if err := loaders.SaveImage(job.output, img); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", job.output)

	if opts.reference != "" {
		return compareWithReference(img, opts.reference, logger)
	}
	return nil
}

func compareWithReference(img *renderer.Image, referencePath string, logger core.Logger) error {
	reference, err := loaders.LoadImage(referencePath)
	if err != nil {
		return fmt.Errorf("error loading reference image: %w", err)
	}

	diff, err := loaders.CompareImages(loaders.NewImageData(img), reference)
	if err != nil {
		return fmt.Errorf("error comparing with reference: %w", err)
	}
	logger.Printf("Difference from %s: max %.4f, mean %.6f\n", referencePath, diff.MaxDiff, diff.MeanDiff)
	return nil
}
