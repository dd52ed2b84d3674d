package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"gopkg.in/yaml.v3"

	"github.com/benchforge/stepgen/pkg/orchestrator"
	"github.com/benchforge/stepgen/pkg/step"
)

var actionChoices = []string{
	"initialize", "connect", "set", "get", "verify", "wait", "disconnect", "shutdown",
}

var equipmentChoices = []string{
	"keysight", "power supply", "oscilloscope", "signal generator", "multimeter",
}

func main() {
	input := flag.String("input", "", "file with step records (JSON or YAML list)")
	outputDir := flag.String("output-dir", "output", "output directory for generated artifacts")
	rendererName := flag.String("renderer", "", "template family override (register, keysight, generic)")
	interactive := flag.Bool("interactive", false, "prompt for step fields instead of reading a file")
	flag.Parse()

	ctx := context.Background()
	gen := orchestrator.New()

	if *interactive {
		if err := runInteractive(ctx, gen, *outputDir, *rendererName); err != nil {
			log.Fatalf("interactive mode: %v", err)
		}
		return
	}

	if *input == "" {
		log.Fatal("either -input or -interactive is required")
	}

	steps, err := loadSteps(*input)
	if err != nil {
		log.Fatalf("load steps: %v", err)
	}
	if len(steps) == 0 {
		log.Fatalf("no step records found in %s", *input)
	}

	for i, st := range steps {
		if err := writeArtifacts(ctx, gen, st, *outputDir, *rendererName, i+1); err != nil {
			log.Fatalf("step %d: %v", i+1, err)
		}
	}
}

// loadSteps decodes a list of step records. YAML is a superset of JSON, so a
// single decoder covers both input formats. Records without a timestamp get
// the current time; the core treats the timestamp as an explicit input.
func loadSteps(path string) ([]step.Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var steps []step.Step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	for i := range steps {
		if steps[i].Timestamp.IsZero() {
			steps[i].Timestamp = time.Now()
		}
	}
	return steps, nil
}

func writeArtifacts(ctx context.Context, gen *orchestrator.Orchestrator, st step.Step, outputDir, rendererName string, index int) error {
	result, err := gen.Generate(ctx, orchestrator.Request{
		Step:     st,
		Renderer: rendererName,
	})
	if err != nil {
		return err
	}

	codeDir := filepath.Join(outputDir, "code")
	configDir := filepath.Join(outputDir, "configs")
	for _, dir := range []string{codeDir, configDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	codePath := filepath.Join(codeDir, fmt.Sprintf("step_%d.py", index))
	configPath := filepath.Join(configDir, fmt.Sprintf("step_%d_config.json", index))

	if err := os.WriteFile(codePath, result.Code, 0o644); err != nil {
		return err
	}
	if err := os.WriteFile(configPath, result.ConfigJSON, 0o644); err != nil {
		return err
	}

	log.Printf("step %d: %s family -> %s, %s", index, result.RendererName, codePath, configPath)
	return nil
}

// runInteractive prompts for the structured step fields. Natural-language
// extraction lives upstream, so the prompts collect the parsed record
// directly rather than free-form text.
func runInteractive(ctx context.Context, gen *orchestrator.Orchestrator, outputDir, rendererName string) error {
	for index := 1; ; index++ {
		st, err := promptStep()
		if err != nil {
			return err
		}

		if err := writeArtifacts(ctx, gen, st, outputDir, rendererName, index); err != nil {
			log.Printf("step %d failed: %v", index, err)
		}

		again := false
		if err := survey.AskOne(&survey.Confirm{Message: "Process another step?"}, &again); err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func promptStep() (step.Step, error) {
	var description string
	if err := survey.AskOne(&survey.Input{Message: "Step description:"}, &description); err != nil {
		return step.Step{}, err
	}

	var actionNames []string
	if err := survey.AskOne(&survey.MultiSelect{
		Message: "Actions:",
		Options: actionChoices,
	}, &actionNames, survey.WithValidator(survey.Required)); err != nil {
		return step.Step{}, err
	}

	var equipment []string
	if err := survey.AskOne(&survey.MultiSelect{
		Message: "Equipment categories (optional):",
		Options: equipmentChoices,
	}, &equipment); err != nil {
		return step.Step{}, err
	}

	var paramInput string
	if err := survey.AskOne(&survey.Input{
		Message: "Parameters (name=value, comma separated; omit value for measure-only):",
	}, &paramInput); err != nil {
		return step.Step{}, err
	}
	parameters, err := parseParameters(paramInput)
	if err != nil {
		return step.Step{}, err
	}

	var addrInput string
	if err := survey.AskOne(&survey.Input{
		Message: "Register addresses (comma separated, optional):",
	}, &addrInput); err != nil {
		return step.Step{}, err
	}

	actions := make([]step.Action, len(actionNames))
	for i, name := range actionNames {
		actions[i] = step.Action(name)
	}

	return step.Step{
		OriginalText: description,
		Timestamp:    time.Now(),
		Actions:      actions,
		Equipment:    equipment,
		Parameters:   parameters,
		Addresses:    parseAddresses(addrInput),
	}, nil
}

func parseParameters(input string) (map[string]step.Param, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, nil
	}

	out := make(map[string]step.Param)
	for _, entry := range strings.Split(trimmed, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name, value, hasValue := strings.Cut(entry, "=")
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" {
			return nil, fmt.Errorf("parameter entry %q has no name", entry)
		}
		if !hasValue || value == "" {
			out[name] = step.NoTarget()
			continue
		}

		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", name, err)
		}
		out[name] = step.Target(v)
	}
	return out, nil
}

func parseAddresses(input string) []step.Address {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil
	}

	var out []step.Address
	for _, token := range strings.Split(trimmed, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		out = append(out, step.ParseAddress(token))
	}
	return out
}
