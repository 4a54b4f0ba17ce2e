// Package config defines the join job run by the joins command.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"

	"github.com/JeffEnglish/joins"
	"github.com/JeffEnglish/joins/internal/log"
)

const (
	joinKindValidator = "join_kind"

	defaultKind   = "inner"
	defaultKeys   = "strict"
	defaultFormat = "json"
)

// Side describes one input collection of a join.
type Side struct {
	// Path to a .json, .yaml or .yml file
	Path string `yaml:"path" validate:"required"`

	// Name of the key field
	Key string `yaml:"key" validate:"required"`

	// Optional prefix added to every field before joining
	Prefix string `yaml:"prefix"`
}

// Job defines one join: its inputs, the join kind and how the result is
// filtered and written.
type Job struct {
	Left  Side `yaml:"left"`
	Right Side `yaml:"right"`

	// One of the join kinds understood by joins.ParseKind
	Kind string `yaml:"kind" validate:"required,join_kind"`

	// Key comparison policy
	Keys string `yaml:"keys" validate:"required,oneof=strict loose"`

	// Optional CEL expression over row
	Where string `yaml:"where"`

	// Optional projection of the result
	Fields []string `yaml:"fields" validate:"dive,required"`
	Format string   `yaml:"format" validate:"required,oneof=json yaml table"`
}

// NewJob creates a job from a YAML file, or an empty job with defaults when
// path is empty.
func NewJob(path string) (*Job, error) {
	job := &Job{}
	if path != "" {
		log.Infoln("read job configuration from ", path)
		content, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, err
		}
		if err := yaml.UnmarshalStrict(content, job); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return job, nil
}

// Flags holds command line values that override a job file.  Empty values
// leave the job unchanged.
type Flags struct {
	LeftPath  string
	RightPath string
	LeftKey   string
	RightKey  string
	Kind      string
	Keys      string
	Where     string
	Fields    string
	Format    string
}

// Apply overrides the job with every non empty flag.  Fields is a comma
// separated list; blanks around names and empty names are dropped.
func (j *Job) Apply(f Flags) {
	override(&j.Left.Path, f.LeftPath)
	override(&j.Right.Path, f.RightPath)
	override(&j.Left.Key, f.LeftKey)
	override(&j.Right.Key, f.RightKey)
	override(&j.Kind, f.Kind)
	override(&j.Keys, f.Keys)
	override(&j.Where, f.Where)
	override(&j.Format, f.Format)
	if f.Fields != "" {
		j.Fields = SplitFields(f.Fields)
	}
}

// SplitFields splits a comma separated list of field names.
func SplitFields(s string) []string {
	var fields []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

func override(dst *string, flag string) {
	if flag != "" {
		*dst = flag
	}
}

// RegisterValidators registers the custom validations used by Job.
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation(joinKindValidator, func(fl validator.FieldLevel) bool {
		_, err := joins.ParseKind(fl.Field().String())
		return err == nil
	})
}

// Validate fills in defaults and checks the job for invalid values.
func (j *Job) Validate() error {
	if j.Kind == "" {
		j.Kind = defaultKind
	}
	if j.Keys == "" {
		j.Keys = defaultKeys
	}
	j.Keys = strings.ToLower(j.Keys)
	if j.Format == "" {
		j.Format = defaultFormat
	}
	j.Format = strings.ToLower(j.Format)

	v := validator.New()
	RegisterValidators(v)
	if err := v.Struct(j); err != nil {
		return fmt.Errorf("invalid job: %w", err)
	}
	return nil
}

// JoinKind returns the parsed join kind.  It must be called after Validate.
func (j *Job) JoinKind() joins.Kind {
	k, _ := joins.ParseKind(j.Kind)
	return k
}

// KeyFunc returns the key policy selected by Keys.
func (j *Job) KeyFunc() joins.KeyFunc {
	if j.Keys == "loose" {
		return joins.LooseKey
	}
	return joins.StrictKey
}

// Projection returns Fields as attributes.
func (j *Job) Projection() []joins.Attribute {
	atts := make([]joins.Attribute, len(j.Fields))
	for i, f := range j.Fields {
		atts[i] = joins.Attribute(f)
	}
	return atts
}

func (j *Job) String() string {
	ret := fmt.Sprintf("%s join of %s (%s) and %s (%s), keys: %s", j.Kind, j.Left.Path, j.Left.Key, j.Right.Path, j.Right.Key, j.Keys)
	if j.Where != "" {
		ret += fmt.Sprintf(", where: %s", j.Where)
	}
	return ret
}
