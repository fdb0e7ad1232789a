// Package problem loads evaluation problems: variable bounds together with named expression
// trees in their structural form.
package problem

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/ytsao/Marabou/pkg/ast"
	"github.com/ytsao/Marabou/pkg/evaluator"
	"github.com/ytsao/Marabou/pkg/interval"
	"gopkg.in/yaml.v3"
)

// Problem is a validated problem ready for evaluation.
type Problem struct {
	LastLayer   bool
	Variables   evaluator.VariableBounds
	Expressions []evaluator.Named
}

type problemDisk struct {
	LastLayer   bool                 `yaml:"last_layer"`
	Variables   map[string][]float64 `yaml:"variables"`
	Expressions []expressionDisk     `yaml:"expressions"`
}

type expressionDisk struct {
	Name string       `yaml:"name"`
	Expr *ast.Encoded `yaml:"expr"`
}

// Load reads and validates a YAML problem file.
func Load(fs afero.Fs, path string) (*Problem, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open problem file '%s'", path)
	}
	defer func() { _ = f.Close() }()
	p, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load problem file '%s'", path)
	}
	return p, nil
}

// Decode reads and validates a YAML problem document.
func Decode(r io.Reader) (*Problem, error) {
	var raw problemDisk
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty problem document")
		}
		return nil, errors.Wrap(err, "failed to parse problem")
	}
	return raw.toProblem()
}

func (d *problemDisk) toProblem() (*Problem, error) {
	vars := make(evaluator.VariableBounds, len(d.Variables))
	for name, b := range d.Variables {
		if name == "" {
			return nil, errors.New("empty variable name")
		}
		if len(b) != 2 {
			return nil, errors.Errorf("variable '%s' must have exactly two bounds, got %d", name, len(b))
		}
		i, err := interval.New(b[0], b[1])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid bounds of variable '%s'", name)
		}
		vars[name] = i
	}
	seen := make(map[string]struct{}, len(d.Expressions))
	exprs := make([]evaluator.Named, 0, len(d.Expressions))
	for i, e := range d.Expressions {
		if e.Name == "" {
			return nil, errors.Errorf("expression %d has no name", i+1)
		}
		if _, ok := seen[e.Name]; ok {
			return nil, errors.Errorf("duplicate expression name '%s'", e.Name)
		}
		seen[e.Name] = struct{}{}
		n, err := ast.Decode(e.Expr)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid expression '%s'", e.Name)
		}
		exprs = append(exprs, evaluator.Named{Name: e.Name, Expr: n})
	}
	return &Problem{LastLayer: d.LastLayer, Variables: vars, Expressions: exprs}, nil
}

// Encode writes the problem back as YAML.
func Encode(w io.Writer, p *Problem) error {
	raw := problemDisk{
		LastLayer:   p.LastLayer,
		Variables:   make(map[string][]float64, len(p.Variables)),
		Expressions: make([]expressionDisk, 0, len(p.Expressions)),
	}
	for name, v := range p.Variables {
		raw.Variables[name] = []float64{v.LowerBound(), v.UpperBound()}
	}
	for _, e := range p.Expressions {
		enc, err := ast.Encode(e.Expr)
		if err != nil {
			return errors.Wrapf(err, "failed to encode expression '%s'", e.Name)
		}
		raw.Expressions = append(raw.Expressions, expressionDisk{Name: e.Name, Expr: enc})
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(raw); err != nil {
		return errors.Wrap(err, "failed to marshal problem")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "failed to close encoder")
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// LoadTree reads a CBOR encoded tree. The expression is named after the file.
func LoadTree(fs afero.Fs, path string) (evaluator.Named, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return evaluator.Named{}, errors.Wrapf(err, "failed to read tree file '%s'", path)
	}
	n, err := ast.UnmarshalCBOR(b)
	if err != nil {
		return evaluator.Named{}, errors.Wrapf(err, "invalid tree file '%s'", path)
	}
	name := filepath.Base(path)
	return evaluator.Named{Name: name[:len(name)-len(filepath.Ext(name))], Expr: n}, nil
}

// ExportTrees writes every expression of the problem as "<name>.cbor" into dir.
func ExportTrees(fs afero.Fs, dir string, p *Problem) error {
	if err := fs.MkdirAll(dir, os.ModePerm); err != nil {
		return errors.Wrapf(err, "failed to create directory '%s'", dir)
	}
	for _, e := range p.Expressions {
		b, err := ast.MarshalCBOR(e.Expr)
		if err != nil {
			return errors.Wrapf(err, "failed to encode expression '%s'", e.Name)
		}
		path := filepath.Join(dir, e.Name+".cbor")
		if err := afero.WriteFile(fs, path, b, 0644); err != nil {
			return errors.Wrapf(err, "failed to write '%s'", path)
		}
	}
	return nil
}
