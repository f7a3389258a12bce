package check

import (
	"sort"
	"sync"
)

// globalRegistry is the single global registry for check rules.
var globalRegistry = &Registry{
	rules: make(map[string]RuleDef),
}

// Registry stores registered rules for discovery.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]RuleDef // keyed by ID
}

// RuleDef is a data-driven rule definition. Rules are stateless; all
// context comes in through the Check function.
type RuleDef struct {
	ID          string   // Unique identifier, e.g. "GD01"
	Name        string   // Human-readable name, e.g. "dates.birth-after-death"
	Group       string   // Category: "dates", "lineage", "marriage"
	Description string   // Human-readable description
	Severity    Severity // Default severity
	Check       CheckFunc
}

// CheckFunc evaluates one rule against the document and graph.
type CheckFunc func(ctx *Context) []Finding

// RuleInfo is the serializable metadata of a rule, for documentation and
// tooling output.
type RuleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Group       string   `json:"group"`
	Severity    Severity `json:"default_severity"`
	Description string   `json:"description"`
}

// Info returns the rule's serializable metadata.
func (r RuleDef) Info() RuleInfo {
	return RuleInfo{
		ID:          r.ID,
		Name:        r.Name,
		Group:       r.Group,
		Severity:    r.Severity,
		Description: r.Description,
	}
}

// Register adds a rule to the global registry.
// Call this from init() functions in rule packages.
func Register(rule RuleDef) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules[rule.ID] = rule
}

// GetAll returns all registered rules sorted by id. The sorted order is
// the declared evaluation order, which keeps finding sequences
// deterministic across runs.
func GetAll() []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	rules := make([]RuleDef, 0, len(globalRegistry.rules))
	for _, rule := range globalRegistry.rules {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID < rules[j].ID })
	return rules
}

// GetByID returns a rule by its id.
func GetByID(id string) (RuleDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	rule, ok := globalRegistry.rules[id]
	return rule, ok
}

// GetByGroup returns all rules in a group, sorted by id.
func GetByGroup(group string) []RuleDef {
	var rules []RuleDef
	for _, rule := range GetAll() {
		if rule.Group == group {
			rules = append(rules, rule)
		}
	}
	return rules
}

// Count returns the number of registered rules.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.rules)
}

// Clear removes all registered rules. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules = make(map[string]RuleDef)
}
