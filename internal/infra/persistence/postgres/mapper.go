package postgres

import (
	"inventory/internal/domain/entity"
	"inventory/internal/infra/persistence/model"
)

func fromSessionDomain(s *entity.Session) *model.SessionModel {
	return &model.SessionModel{
		ID:            s.ID,
		UserID:        s.User.ID,
		UserName:      s.User.Name,
		UserEmail:     s.User.Email,
		UserRole:      string(s.User.Role),
		UpstreamToken: s.UpstreamToken,
		UserAgent:     s.UserAgent,
		IPAddress:     s.IPAddress,
		ExpiresAt:     s.ExpiresAt,
		LastSeenAt:    s.LastSeenAt,
		CreatedAt:     s.CreatedAt,
	}
}

func toSessionDomain(m *model.SessionModel) *entity.Session {
	return &entity.Session{
		ID: m.ID,
		User: entity.User{
			ID:    m.UserID,
			Name:  m.UserName,
			Email: m.UserEmail,
			Role:  entity.Role(m.UserRole),
		},
		UpstreamToken: m.UpstreamToken,
		UserAgent:     m.UserAgent,
		IPAddress:     m.IPAddress,
		ExpiresAt:     m.ExpiresAt,
		LastSeenAt:    m.LastSeenAt,
		CreatedAt:     m.CreatedAt,
	}
}

func fromAlertDomain(a *entity.LowStockAlert) *model.LowStockAlertModel {
	return &model.LowStockAlertModel{
		ID:          a.ID,
		MessageID:   a.MessageID,
		ProductID:   a.ProductID,
		SKU:         a.SKU,
		Name:        a.Name,
		Stock:       a.Stock,
		MinStock:    a.MinStock,
		Unit:        a.Unit,
		TriggeredBy: a.TriggeredBy,
		RequestID:   a.RequestID,
		OccurredAt:  a.OccurredAt,
		ReceivedAt:  a.ReceivedAt,
	}
}

func toAlertDomain(m *model.LowStockAlertModel) *entity.LowStockAlert {
	return &entity.LowStockAlert{
		ID:          m.ID,
		MessageID:   m.MessageID,
		ProductID:   m.ProductID,
		SKU:         m.SKU,
		Name:        m.Name,
		Stock:       m.Stock,
		MinStock:    m.MinStock,
		Unit:        m.Unit,
		TriggeredBy: m.TriggeredBy,
		RequestID:   m.RequestID,
		OccurredAt:  m.OccurredAt,
		ReceivedAt:  m.ReceivedAt,
	}
}
