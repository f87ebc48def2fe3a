package optimizer

import (
	"context"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/puzpuzpuz/xsync/v3"

	"mit.edu/dsg/planopt/common"
	"mit.edu/dsg/planopt/planner"
)

// Optimizer runs the configured rules over query plans. Every rule is applied
// exactly once per plan, in configuration order. An Optimizer is safe for
// concurrent use.
type Optimizer struct {
	cfg     Config
	logger  log.Logger
	rules   []Rule
	metrics *metrics

	// Total rewrites per rule since the optimizer was created.
	rewrites *xsync.MapOf[string, *xsync.Counter]
}

// New validates cfg and builds an Optimizer. A nil logger discards logs and a
// nil registerer leaves the metrics unregistered.
func New(cfg Config, logger log.Logger, reg prometheus.Registerer) (*Optimizer, error) {
	names, err := cfg.ruleNames()
	if err != nil {
		return nil, errors.Wrap(err, "invalid optimizer config")
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}

	o := &Optimizer{
		cfg:      cfg,
		logger:   log.With(logger, "component", "optimizer"),
		metrics:  newMetrics(reg),
		rewrites: xsync.NewMapOf[string, *xsync.Counter](),
	}
	for _, name := range names {
		rule, ok := lookupRule(name)
		common.Assert(ok, "rule %s disappeared from the registry", name)
		o.rules = append(o.rules, rule)
		o.rewrites.Store(name, xsync.NewCounter())
		o.metrics.ruleRewrites.WithLabelValues(name)
	}
	return o, nil
}

// Rules returns the names of the rules the optimizer runs, in order.
func (o *Optimizer) Rules() []string {
	names := make([]string, len(o.rules))
	for i, rule := range o.rules {
		names[i] = rule.Name()
	}
	return names
}

// Optimize applies every configured rule to plan and returns the rewritten
// plan. The input plan is never modified.
func (o *Optimizer) Optimize(ctx context.Context, plan planner.PlanNode) (planner.PlanNode, error) {
	if plan == nil {
		return nil, common.NewError(common.InvalidPlanError, "plan is nil")
	}
	if o.cfg.ValidatePlans {
		if err := planner.Validate(plan); err != nil {
			level.Warn(o.logger).Log("msg", "refusing to optimize malformed plan", "err", err)
			return nil, errors.Wrap(err, "validating plan")
		}
	}
	o.metrics.plansOptimized.Inc()

	for _, rule := range o.rules {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "optimizer interrupted before rule %s", rule.Name())
		}

		before := plan
		var rewrites int
		plan, rewrites = rule.Apply(plan)
		o.record(rule.Name(), rewrites)

		level.Debug(o.logger).Log("msg", "applied optimizer rule", "rule", rule.Name(), "rewrites", rewrites)
		if o.cfg.LogPlans && rewrites > 0 {
			level.Debug(o.logger).Log("msg", "plan rewritten", "rule", rule.Name(), "before", planner.Format(before), "after", planner.Format(plan))
		}
	}
	return plan, nil
}

func (o *Optimizer) record(rule string, rewrites int) {
	if rewrites == 0 {
		return
	}
	counter, _ := o.rewrites.LoadOrCompute(rule, xsync.NewCounter)
	counter.Add(int64(rewrites))
	o.metrics.ruleRewrites.WithLabelValues(rule).Add(float64(rewrites))
}

// Stats returns the total number of rewrites made by each configured rule.
func (o *Optimizer) Stats() map[string]int64 {
	stats := make(map[string]int64, o.rewrites.Size())
	o.rewrites.Range(func(rule string, counter *xsync.Counter) bool {
		stats[rule] = counter.Value()
		return true
	})
	return stats
}
