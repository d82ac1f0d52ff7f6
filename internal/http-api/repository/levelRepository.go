package repository

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"levelhub/internal/http-api/dto"
	"levelhub/internal/http-api/models"

	"gorm.io/gorm"
)

// LevelRepository defines the interface for level data operations.
type LevelRepository interface {
	Create(ctx context.Context, level *models.Level) error
	Update(ctx context.Context, level *models.Level) error
	Delete(ctx context.Context, levelID int64) error
	GetByID(ctx context.Context, levelID int64) (*models.Level, error)
	ListByUser(ctx context.Context, userID string, includeUnpublished bool) ([]models.Level, error)
	Feed(ctx context.Context, filters dto.SearchFilters) ([]dto.FeedItem, int64, error)
}

type levelRepository struct {
	db *gorm.DB
}

func NewLevelRepository(db *gorm.DB) LevelRepository {
	return &levelRepository{db: db}
}

func (r *levelRepository) Create(ctx context.Context, level *models.Level) error {
	if err := r.db.WithContext(ctx).Create(level).Error; err != nil {
		return fmt.Errorf("create level: %w", err)
	}
	return nil
}

// Update writes the caller-mutable columns only. The derived rating column
// is owned by the comment-mutation transactions; writing it here could
// overwrite a recompute that landed after this level was read.
func (r *levelRepository) Update(ctx context.Context, level *models.Level) error {
	err := r.db.WithContext(ctx).
		Model(&models.Level{}).
		Where("id = ?", level.ID).
		Updates(map[string]interface{}{
			"name":        level.Name,
			"summary":     level.Summary,
			"description": level.Description,
			"difficulty":  level.Difficulty,
			"published":   level.Published,
		}).Error
	if err != nil {
		return fmt.Errorf("update level: %w", err)
	}
	return nil
}

func (r *levelRepository) Delete(ctx context.Context, levelID int64) error {
	// comments go with the level in one transaction
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("level_id = ?", levelID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Level{}, levelID).Error
	})
	if err != nil {
		return fmt.Errorf("delete level: %w", err)
	}
	return nil
}

func (r *levelRepository) GetByID(ctx context.Context, levelID int64) (*models.Level, error) {
	var l models.Level
	if err := r.db.WithContext(ctx).Preload("User").First(&l, levelID).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// ListByUser retrieves a user's levels, newest first. Unpublished levels are
// included only when the requester is the owner.
func (r *levelRepository) ListByUser(ctx context.Context, userID string, includeUnpublished bool) ([]models.Level, error) {
	var list []models.Level
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if !includeUnpublished {
		q = q.Where("published = ?", true)
	}
	if err := q.Order("created_at desc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list levels by user: %w", err)
	}
	return list, nil
}

// Feed runs the home-feed search: published levels joined with their owners,
// filtered and sorted per the validated SearchFilters, paginated. Every
// caller-supplied value crosses into SQL as a bound parameter; the statement
// text itself is assembled only from fixed fragments.
func (r *levelRepository) Feed(ctx context.Context, filters dto.SearchFilters) ([]dto.FeedItem, int64, error) {
	clauses, args, orderBy := buildFeedQuery(filters)
	where := strings.Join(clauses, " AND ")

	base := r.db.WithContext(ctx).
		Table("levels").
		Joins("JOIN users ON users.id = levels.user_id").
		Where(where, args...)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count feed: %w", err)
	}

	offset := (filters.Page - 1) * filters.PageSize
	var items []dto.FeedItem
	err := base.Session(&gorm.Session{}).
		Select(`levels.id AS level_id, levels.name, levels.rating, levels.summary,
			levels.description, levels.difficulty,
			users.id AS owner_id, users.username AS owner_name, users.avatar_url AS owner_avatar`).
		Order(orderBy).
		Limit(filters.PageSize).
		Offset(offset).
		Scan(&items).Error
	if err != nil {
		return nil, 0, fmt.Errorf("search feed: %w", err)
	}

	return items, total, nil
}

// buildFeedQuery composes the WHERE clauses and bind arguments for the feed
// statement from a validated filter set. Clauses are fixed strings with ?
// placeholders only; filter values never appear in the returned SQL text.
func buildFeedQuery(f dto.SearchFilters) (clauses []string, args []interface{}, orderBy string) {
	clauses = append(clauses, "levels.published = TRUE")

	// rating range always applies, inclusive bounds
	high := float64(models.RatingMax)
	if f.RatingHigh != nil {
		high = *f.RatingHigh
	}
	clauses = append(clauses, "levels.rating >= ? AND levels.rating <= ?")
	args = append(args, f.RatingLow, high)

	// each difficulty value is an independent bound parameter (gorm expands
	// the slice into IN (?,?,...))
	if len(f.Difficulties) > 0 {
		clauses = append(clauses, "levels.difficulty IN ?")
		args = append(args, f.Difficulties)
	}

	// recency window, evaluated by the database at execution time
	if f.TimespanDays != nil {
		clauses = append(clauses, "levels.created_at >= CURRENT_TIMESTAMP - make_interval(days => ?)")
		args = append(args, *f.TimespanDays)
	}

	// prefix full-text search over the precomputed search vector; the whole
	// tsquery expression is a single bound parameter
	if tsq := BuildPrefixTSQuery(f.Search); tsq != "" {
		clauses = append(clauses, "levels.search_vector @@ to_tsquery('english', ?)")
		args = append(args, tsq)
	}

	if f.SortBy == dto.SortByTime {
		orderBy = "levels.created_at DESC"
	} else {
		orderBy = "levels.rating DESC"
	}

	return clauses, args, orderBy
}

// BuildPrefixTSQuery tokenizes free text on whitespace and combines the
// tokens into a prefix-match tsquery with OR semantics: "fire:* | maze:*".
// Tokens are stripped down to letters and digits so the result is always a
// syntactically valid tsquery; an empty result means "no search clause".
func BuildPrefixTSQuery(search string) string {
	var lexemes []string
	for _, tok := range strings.Fields(search) {
		tok = strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return r
			}
			return -1
		}, tok)
		if tok == "" {
			continue
		}
		lexemes = append(lexemes, tok+":*")
	}
	return strings.Join(lexemes, " | ")
}
