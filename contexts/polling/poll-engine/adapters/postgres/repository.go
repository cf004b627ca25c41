package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"rankify/contexts/polling/poll-engine/domain/entities"
	domainerrors "rankify/contexts/polling/poll-engine/domain/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type pollModel struct {
	ID        string     `gorm:"column:id;primaryKey"`
	Title     string     `gorm:"column:title"`
	StartTime *time.Time `gorm:"column:start_time"`
	EndTime   *time.Time `gorm:"column:end_time"`
	Created   time.Time  `gorm:"column:created"`
}

func (pollModel) TableName() string { return "polls" }

type pollOptionModel struct {
	PollID   string `gorm:"column:poll_id;primaryKey"`
	Position int    `gorm:"column:position;primaryKey"`
	Text     string `gorm:"column:option_text"`
}

func (pollOptionModel) TableName() string { return "poll_options" }

type voteModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	PollID      string    `gorm:"column:poll_id"`
	SubmittedAt time.Time `gorm:"column:submitted_at"`
}

func (voteModel) TableName() string { return "votes" }

type rankingModel struct {
	VoteID     string `gorm:"column:vote_id;primaryKey"`
	OptionText string `gorm:"column:option_text;primaryKey"`
	Rank       int    `gorm:"column:rank"`
}

func (rankingModel) TableName() string { return "rankings" }

// Repository persists poll aggregates and vote records. Each write runs in a
// single transaction so a failed validation never leaves partial rows.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) Create(ctx context.Context, poll *entities.Poll) (entities.PollID, error) {
	if poll == nil {
		return "", fmt.Errorf("%w: poll must not be nil", domainerrors.ErrInvalidArgument)
	}
	schedule := poll.Schedule()
	row := pollModel{
		ID:        poll.ID().String(),
		Title:     poll.Title(),
		StartTime: schedule.Start(),
		EndTime:   schedule.End(),
		Created:   poll.Created().UTC(),
	}
	options := poll.Ballot().Options()
	optionRows := make([]pollOptionModel, 0, len(options))
	for position, option := range options {
		optionRows = append(optionRows, pollOptionModel{
			PollID:   row.ID,
			Position: position,
			Text:     option.Text(),
		})
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return tx.Create(&optionRows).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("%w: poll %s already exists", domainerrors.ErrInvalidArgument, row.ID)
		}
		return "", r.logError("poll_repo_create_failed", err, "poll_id", row.ID)
	}
	return poll.ID(), nil
}

// Update persists schedule changes only. Title and ballot are immutable once
// the poll exists.
func (r *Repository) Update(ctx context.Context, poll *entities.Poll) error {
	if poll == nil {
		return fmt.Errorf("%w: poll must not be nil", domainerrors.ErrInvalidArgument)
	}
	schedule := poll.Schedule()
	result := r.db.WithContext(ctx).Model(&pollModel{}).
		Where("id = ?", poll.ID().String()).
		Updates(map[string]any{
			"start_time": schedule.Start(),
			"end_time":   schedule.End(),
		})
	if result.Error != nil {
		return r.logError("poll_repo_update_failed", result.Error, "poll_id", poll.ID().String())
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", domainerrors.ErrPollNotFound, poll.ID())
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id entities.PollID) (*entities.Poll, error) {
	var row pollModel
	err := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domainerrors.ErrPollNotFound, id)
		}
		return nil, r.logError("poll_repo_get_failed", err, "poll_id", id.String())
	}

	var optionRows []pollOptionModel
	err = r.db.WithContext(ctx).
		Where("poll_id = ?", id.String()).
		Order("position ASC").
		Find(&optionRows).Error
	if err != nil {
		return nil, r.logError("poll_repo_get_options_failed", err, "poll_id", id.String())
	}

	texts := make([]string, 0, len(optionRows))
	for _, optionRow := range optionRows {
		texts = append(texts, optionRow.Text)
	}
	ballot, err := entities.NewBallotFromTexts(texts)
	if err != nil {
		return nil, r.logError("poll_repo_ballot_rebuild_failed", err, "poll_id", id.String())
	}
	schedule, err := entities.NewSchedule(row.StartTime, row.EndTime)
	if err != nil {
		return nil, r.logError("poll_repo_schedule_rebuild_failed", err, "poll_id", id.String())
	}
	return entities.NewPoll(entities.PollID(row.ID), row.Title, ballot, schedule, row.Created)
}

func (r *Repository) ExistsByID(ctx context.Context, id entities.PollID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&pollModel{}).
		Where("id = ?", id.String()).
		Count(&count).Error
	if err != nil {
		return false, r.logError("poll_repo_exists_failed", err, "poll_id", id.String())
	}
	return count > 0, nil
}

// SaveVote appends a vote and its rankings. Every ranked option must resolve
// against the poll's stored options.
func (r *Repository) SaveVote(ctx context.Context, vote entities.Vote) error {
	if vote == nil {
		return fmt.Errorf("%w: vote must not be nil", domainerrors.ErrInvalidArgument)
	}
	pollID := vote.PollID().String()
	voteID := uuid.NewString()
	rankings := vote.Rankings()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var known int64
		if err := tx.Model(&pollOptionModel{}).
			Where("poll_id = ?", pollID).
			Count(&known).Error; err != nil {
			return err
		}
		if known == 0 {
			return fmt.Errorf("%w: %s", domainerrors.ErrPollNotFound, pollID)
		}

		rankingRows := make([]rankingModel, 0, len(rankings))
		for option, rank := range rankings {
			var matches int64
			if err := tx.Model(&pollOptionModel{}).
				Where("poll_id = ? AND option_text = ?", pollID, option.Text()).
				Count(&matches).Error; err != nil {
				return err
			}
			if matches == 0 {
				return fmt.Errorf("%w: option %q", domainerrors.ErrOptionNotInBallot, option.Text())
			}
			rankingRows = append(rankingRows, rankingModel{
				VoteID:     voteID,
				OptionText: option.Text(),
				Rank:       rank,
			})
		}

		row := voteModel{
			ID:          voteID,
			PollID:      pollID,
			SubmittedAt: time.Now().UTC(),
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return tx.Create(&rankingRows).Error
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrOptionNotInBallot) || errors.Is(err, domainerrors.ErrPollNotFound) {
			return err
		}
		return r.logError("vote_repo_save_failed", err, "poll_id", pollID, "vote_id", voteID)
	}
	return nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "polling/poll-engine",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("poll repository operation failed", fields...)
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
