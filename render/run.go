// Package render implements the render subcommand: it loads a YAML rule
// file, builds every rule through the selector package and writes rendered
// selector strings.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"cssb/selector"
	"cssb/state"
)

// node describes one renderable expression in a rule file: either a compound
// selector (parts) or a combination of two nested nodes (combine).
type node struct {
	Parts   []partDef   `yaml:"parts,omitempty"`
	Combine *combineDef `yaml:"combine,omitempty"`
}

type partDef struct {
	Kind  string `yaml:"kind"`
	Value string `yaml:"value"`
}

type combineDef struct {
	Left       node   `yaml:"left"`
	Combinator string `yaml:"combinator"`
	Right      node   `yaml:"right"`
}

type ruleDef struct {
	Name string `yaml:"name"`
	Expr node   `yaml:",inline"`
}

type rulesFile struct {
	Version int       `yaml:"version"`
	Rules   []ruleDef `yaml:"rules"`
}

// parseRules decodes a rule file, rejecting unknown fields the same way
// configuration loading does.
func parseRules(data []byte) (*rulesFile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var rf rulesFile
	if err := dec.Decode(&rf); err != nil {
		return nil, fmt.Errorf("failed to decode rules data: %w", err)
	}
	if rf.Version != 1 {
		return nil, fmt.Errorf("unsupported rules file version %d", rf.Version)
	}
	return &rf, nil
}

// buildNode turns a rule file node into a renderable expression. Selector
// composition violations surface here, before anything is rendered.
func buildNode(n node) (selector.Renderable, error) {
	switch {
	case len(n.Parts) > 0 && n.Combine != nil:
		return nil, errors.New("node must not have both parts and combine")

	case n.Combine != nil:
		left, err := buildNode(n.Combine.Left)
		if err != nil {
			return nil, err
		}
		right, err := buildNode(n.Combine.Right)
		if err != nil {
			return nil, err
		}
		// combinator token is embedded verbatim, whatever it is
		return selector.Combine(left, n.Combine.Combinator, right), nil

	case len(n.Parts) > 0:
		kind, err := selector.ParseKind(n.Parts[0].Kind)
		if err != nil {
			return nil, err
		}
		s := selector.New(kind, n.Parts[0].Value)
		for _, p := range n.Parts[1:] {
			if kind, err = selector.ParseKind(p.Kind); err != nil {
				return nil, err
			}
			s.With(kind, p.Value)
		}
		if err := s.Err(); err != nil {
			return nil, err
		}
		return s, nil

	default:
		return nil, errors.New("node must have either parts or combine")
	}
}

type renderedRule struct {
	name  string
	value string
}

// renderRules builds and renders every rule, aggregating per-rule failures.
// Rules that build successfully are always returned, even when siblings
// fail.
func renderRules(rf *rulesFile, log *zap.Logger) ([]renderedRule, error) {
	var (
		out  []renderedRule
		errs error
	)

	seen := make(map[string]struct{}, len(rf.Rules))
	for i, r := range rf.Rules {
		if len(r.Name) == 0 {
			errs = multierr.Append(errs, fmt.Errorf("rule #%d has no name", i+1))
			continue
		}
		if _, dup := seen[r.Name]; dup {
			log.Warn("Duplicate rule name, rendering both", zap.String("rule", r.Name))
		}
		seen[r.Name] = struct{}{}

		expr, err := buildNode(r.Expr)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("rule '%s': %w", r.Name, err))
			continue
		}
		rendered := expr.String()
		log.Debug("Rendered rule", zap.String("rule", r.Name), zap.String("selector", rendered))
		out = append(out, renderedRule{name: r.Name, value: rendered})
	}
	return out, errs
}

func formatRules(rules []renderedRule, sortRules bool) string {
	if sortRules {
		sort.SliceStable(rules, func(i, j int) bool {
			return natural.Less(rules[i].name, rules[j].name)
		})
	}
	var sb strings.Builder
	for _, r := range rules {
		sb.WriteString(r.name)
		sb.WriteString(": ")
		sb.WriteString(r.value)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Run renders a YAML rule file: SOURCE [DESTINATION].
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input rules file has been specified")
	}
	src, err := filepath.Abs(src)
	if err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read rules file '%s': %w", src, err)
	}
	rf, err := parseRules(data)
	if err != nil {
		return fmt.Errorf("unable to parse rules file '%s': %w", src, err)
	}
	log.Debug("Loaded rules", zap.String("source", src), zap.Int("rules", len(rf.Rules)))

	rendered, errs := renderRules(rf, log)
	output := formatRules(rendered, env.Cfg.Render.SortRules)

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		fmt.Print(output)
		log.Info("Rendered rules", zap.Int("ok", len(rendered)), zap.Int("failed", len(multierr.Errors(errs))))
		return errs
	}

	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	overwrite := env.Cfg.Render.Overwrite || cmd.Bool("overwrite")
	if _, err := os.Stat(dst); err == nil && !overwrite {
		return fmt.Errorf("destination file '%s' already exists, use --overwrite to replace it", dst)
	}
	if err := os.WriteFile(dst, []byte(output), 0644); err != nil {
		return multierr.Append(errs, fmt.Errorf("unable to write destination file '%s': %w", dst, err))
	}

	log.Info("Rendered rules", zap.String("destination", dst), zap.Int("ok", len(rendered)), zap.Int("failed", len(multierr.Errors(errs))))
	return errs
}
