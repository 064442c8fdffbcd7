package repository

import "rental-optimizer/domain"

type AnalysisRepository interface {
	Save(record domain.AnalysisRecord) error
	Recent(limit int) []domain.AnalysisRecord
}
