package categorizer

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/caixahub/syncd/pkg/database"
)

type Source string

const (
	SourceRule      = Source("rule")
	SourceProvider  = Source("provider")
	SourceHeuristic = Source("heuristic")
	SourceNone      = Source("none")
)

const (
	confidenceRule      = 1.0
	confidenceProvider  = 0.9
	confidenceHeuristic = 0.6

	fuzzyThreshold = 0.82
)

type Request struct {
	CompanyID   string
	Description string
	RawCategory string
	Type        database.TransactionType
}

type Resolution struct {
	Category   *database.Category
	Confidence float64
	Source     Source
}

type Resolver struct {
	repo Repo
}

func NewResolver(repo Repo) *Resolver {
	return &Resolver{
		repo: repo,
	}
}

// Resolve picks a category in priority order: user rule, provider
// category, keyword heuristic, and finally the Uncategorized sentinel.
// "No match" is a normal terminal case, never an error.
func (r *Resolver) Resolve(ctx context.Context, request Request) (Resolution, error) {
	if resolution, ok, err := r.resolveByRule(ctx, request); err != nil {
		return Resolution{}, err
	} else if ok {
		return resolution, nil
	}

	if resolution, ok, err := r.resolveByProvider(ctx, request); err != nil {
		return Resolution{}, err
	} else if ok {
		return resolution, nil
	}

	if resolution, ok, err := r.resolveByKeywords(ctx, request); err != nil {
		return Resolution{}, err
	} else if ok {
		return resolution, nil
	}

	sentinel, err := r.repo.UncategorizedCategory(ctx)
	if err != nil {
		return Resolution{}, errors.Wrap(err, "load sentinel category")
	}

	return Resolution{
		Category:   sentinel,
		Confidence: 0,
		Source:     SourceNone,
	}, nil
}

func (r *Resolver) resolveByRule(ctx context.Context, request Request) (Resolution, bool, error) {
	rules, err := r.repo.ListActiveRules(ctx, request.CompanyID)
	if err != nil {
		return Resolution{}, false, errors.Wrap(err, "list category rules")
	}

	if len(rules) == 0 {
		return Resolution{}, false, nil
	}

	description := normalize(request.Description)

	// Exact-ish matches win over fuzzy ones regardless of rule order.
	for _, matchType := range []database.RuleMatchType{
		database.RuleMatchPrefix,
		database.RuleMatchContains,
		database.RuleMatchFuzzy,
	} {
		for _, rule := range rules {
			if rule.MatchType != matchType {
				continue
			}

			if !ruleMatches(rule, description) {
				continue
			}

			category, catErr := r.repo.GetCategory(ctx, rule.CategoryID)
			if catErr != nil {
				return Resolution{}, false, errors.Wrapf(catErr, "rule %s category", rule.ID)
			}

			if incErr := r.repo.IncrementRuleApplied(ctx, rule.ID); incErr != nil {
				zerolog.Ctx(ctx).Warn().Err(incErr).
					Str("rule_id", rule.ID).
					Msg("failed to bump rule applied_count")
			}

			return Resolution{
				Category:   category,
				Confidence: confidenceRule,
				Source:     SourceRule,
			}, true, nil
		}
	}

	return Resolution{}, false, nil
}

func (r *Resolver) resolveByProvider(ctx context.Context, request Request) (Resolution, bool, error) {
	if strings.TrimSpace(request.RawCategory) == "" {
		return Resolution{}, false, nil
	}

	name := translateProviderCategory(request.RawCategory)

	categoryType := database.CategoryTypeExpense
	if request.Type.IsInflow() {
		categoryType = database.CategoryTypeIncome
	}

	category, err := r.repo.FindOrCreateCategory(ctx, request.CompanyID, name, categoryType)
	if err != nil {
		return Resolution{}, false, errors.Wrapf(err, "provider category %s", name)
	}

	return Resolution{
		Category:   category,
		Confidence: confidenceProvider,
		Source:     SourceProvider,
	}, true, nil
}

func (r *Resolver) resolveByKeywords(ctx context.Context, request Request) (Resolution, bool, error) {
	categories, err := r.repo.ListSystemCategories(ctx)
	if err != nil {
		return Resolution{}, false, errors.Wrap(err, "list system categories")
	}

	upper := strings.ToUpper(request.Description)

	for _, category := range categories {
		matched := lo.SomeBy(category.Keywords, func(keyword string) bool {
			return keyword != "" && strings.Contains(upper, strings.ToUpper(keyword))
		})

		if matched {
			return Resolution{
				Category:   category,
				Confidence: confidenceHeuristic,
				Source:     SourceHeuristic,
			}, true, nil
		}
	}

	return Resolution{}, false, nil
}

func ruleMatches(rule *database.CategoryRule, normalizedDescription string) bool {
	pattern := normalize(rule.Pattern)
	if pattern == "" {
		return false
	}

	switch rule.MatchType {
	case database.RuleMatchPrefix:
		return strings.HasPrefix(normalizedDescription, pattern)
	case database.RuleMatchContains:
		return strings.Contains(normalizedDescription, pattern)
	case database.RuleMatchFuzzy:
		return similarity(pattern, normalizedDescription) >= fuzzyThreshold
	default:
		return false
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
