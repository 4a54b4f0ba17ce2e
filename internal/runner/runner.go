// Package runner executes a configured join job.
package runner

import (
	"fmt"
	"io"

	"github.com/JeffEnglish/joins"
	"github.com/JeffEnglish/joins/expr"
	"github.com/JeffEnglish/joins/internal/config"
	"github.com/JeffEnglish/joins/internal/log"
	"github.com/JeffEnglish/joins/internal/source"
)

// Run loads both sides of job, joins them, applies the optional where filter
// and projection, and writes the result to w.  job must be validated.
func Run(job *config.Job, w io.Writer) error {
	log.Debugf("running %s", job)

	left, err := loadSide(job.Left)
	if err != nil {
		return fmt.Errorf("load left side: %w", err)
	}
	right, err := loadSide(job.Right)
	if err != nil {
		return fmt.Errorf("load right side: %w", err)
	}

	recs, err := Join(job, left, right)
	if err != nil {
		return err
	}

	log.Infof("%s join produced %d records from %d left and %d right records", job.JoinKind(), len(recs), len(left), len(right))
	return source.Write(w, recs, job.Format, job.Projection()...)
}

// Join runs the join, where filter and projection of job on records that are
// already loaded.
func Join(job *config.Job, left, right []joins.Record) ([]joins.Record, error) {
	lk := joins.Attribute(job.Left.Prefix + job.Left.Key)
	rk := joins.Attribute(job.Right.Prefix + job.Right.Key)

	kind, err := joins.ParseKind(job.Kind)
	if err != nil {
		return nil, err
	}
	j := joins.Joiner{Key: job.KeyFunc()}
	recs, err := j.Join(kind, left, right, lk, rk, nil)
	if err != nil {
		return nil, err
	}

	if job.Where != "" {
		p, err := expr.NewPredicate(job.Where)
		if err != nil {
			return nil, fmt.Errorf("where: %w", err)
		}
		before := len(recs)
		recs = joins.Restrict(recs, p)
		log.Debugf("where filter %q kept %d of %d records", job.Where, len(recs), before)
	}

	if len(job.Fields) > 0 {
		recs = joins.Project(recs, job.Projection()...)
	}
	return recs, nil
}

func loadSide(side config.Side) ([]joins.Record, error) {
	recs, err := source.Load(side.Path)
	if err != nil {
		return nil, err
	}
	log.Debugf("loaded %d records from %s", len(recs), side.Path)
	if side.Prefix != "" {
		recs = joins.Prefix(recs, side.Prefix)
	}
	return recs, nil
}
