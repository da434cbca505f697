package algebra

import "fmt"

// Config holds the per-combine constraint cap and the sparse/dense
// multiplication cutover used by the domain evaluator. Both are
// configuration, not protocol constants.
type Config struct {
	// ConstraintCap bounds how many constraints Combine folds into a
	// GroupedConstraints. Constraints beyond the cap are dropped and a
	// warning is logged; this never fails the call.
	ConstraintCap int

	// SparseDenseCutover is the number of non-zero terms below which a
	// sparse numerator is multiplied directly against a dense polynomial,
	// and at or above which it is first promoted to dense. Calibrated on
	// the reference AIR harness; changing it changes performance, not
	// correctness.
	SparseDenseCutover int

	// DebugChecks enables the degree post-condition check in
	// GroupedConstraints.EvalOnDomain: the resulting polynomial's degree
	// is compared with the combine's target degree and a mismatch is
	// logged at warn level; the call never fails on it. Defaults to off.
	DebugChecks bool
}

// DefaultConfig returns a 30-constraint cap and a 20-term cutover.
func DefaultConfig() *Config {
	return &Config{
		ConstraintCap:      30,
		SparseDenseCutover: 20,
		DebugChecks:        false,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.ConstraintCap <= 0 {
		return fmt.Errorf("constraint cap must be positive, got %d", c.ConstraintCap)
	}
	if c.SparseDenseCutover < 0 {
		return fmt.Errorf("sparse/dense cutover must be non-negative, got %d", c.SparseDenseCutover)
	}
	return nil
}

// WithConstraintCap sets the constraint cap.
func (c *Config) WithConstraintCap(cap int) *Config {
	c.ConstraintCap = cap
	return c
}

// WithSparseDenseCutover sets the sparse/dense multiplication cutover.
func (c *Config) WithSparseDenseCutover(cutover int) *Config {
	c.SparseDenseCutover = cutover
	return c
}

// WithDebugChecks toggles the degree post-condition check.
func (c *Config) WithDebugChecks(enabled bool) *Config {
	c.DebugChecks = enabled
	return c
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// resolveConfig returns cfg, or DefaultConfig() if cfg is nil.
func resolveConfig(cfg *Config) *Config {
	if cfg == nil {
		return DefaultConfig()
	}
	return cfg
}
