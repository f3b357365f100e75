package postgres

import (
	"context"
	"time"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// sessionRepository implements repository.SessionRepository.
type sessionRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db, now: time.Now}
}

// primary forces reads to the primary. Sessions are read right after they are written,
// before a replica may have caught up.
func (repo *sessionRepository) primary(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Write)
}

func (repo *sessionRepository) CreateSession(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSessionCreationFailed.WrapMessage("session already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrSessionCreationFailed.WrapMessage("missing required session information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	session.CreatedAt = sessionM.CreatedAt

	return nil
}

func (repo *sessionRepository) FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var sessionM model.SessionModel
	err := repo.primary(ctx).Where("id = ?", id).First(&sessionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.WithStack(err)
	}

	session := toSessionDomain(&sessionM)
	if session.IsExpired(repo.now()) {
		return nil, repository.ErrSessionExpired
	}

	return session, nil
}

func (repo *sessionRepository) FindSessionsByUserID(ctx context.Context, userID string) ([]*entity.Session, error) {
	var sessionModels []*model.SessionModel
	err := repo.primary(ctx).
		Where("user_id = ? AND expires_at > ?", userID, repo.now()).
		Order("created_at DESC").
		Find(&sessionModels).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sessions := make([]*entity.Session, 0, len(sessionModels))
	for _, sessionM := range sessionModels {
		sessions = append(sessions, toSessionDomain(sessionM))
	}

	return sessions, nil
}

func (repo *sessionRepository) TouchSession(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("id = ?", id).
		Update("last_seen_at", at)
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

func (repo *sessionRepository) UpdateSessionUser(ctx context.Context, user *entity.User) error {
	err := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("user_id = ?", user.ID).
		Updates(map[string]any{
			"user_name":  user.Name,
			"user_email": user.Email,
			"user_role":  string(user.Role),
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update session user")
	}

	return nil
}

func (repo *sessionRepository) DeleteSession(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SessionModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	// If no rows were affected, it means the session was not found.
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

func (repo *sessionRepository) DeleteSessionsByUserID(ctx context.Context, userID string) error {
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.SessionModel{}).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (repo *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&model.SessionModel{})
	if result.Error != nil {
		return 0, errors.WithStack(result.Error)
	}

	return result.RowsAffected, nil
}

func (repo *sessionRepository) CountActiveSessionsByUserID(ctx context.Context, userID string) (int, error) {
	var count int64
	err := repo.primary(ctx).
		Model(&model.SessionModel{}).
		Where("user_id = ? AND expires_at > ?", userID, repo.now()).
		Count(&count).Error
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return int(count), nil
}
