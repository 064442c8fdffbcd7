package repository

import (
	"sync"

	"rental-optimizer/domain"
)

// AnalysisRepositoryMemory is an in-memory implementation of AnalysisRepository.
type AnalysisRepositoryMemory struct {
	mu   sync.Mutex
	data []domain.AnalysisRecord
}

// NewAnalysisRepositoryMemory creates a new in-memory analysis repository.
func NewAnalysisRepositoryMemory() *AnalysisRepositoryMemory {
	return &AnalysisRepositoryMemory{
		data: []domain.AnalysisRecord{},
	}
}

// Save stores the computed analysis in memory.
func (r *AnalysisRepositoryMemory) Save(record domain.AnalysisRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, record)
	return nil
}

// Recent returns up to limit records, newest first.
func (r *AnalysisRepositoryMemory) Recent(limit int) []domain.AnalysisRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.data) {
		limit = len(r.data)
	}
	out := make([]domain.AnalysisRecord, 0, limit)
	for i := len(r.data) - 1; i >= len(r.data)-limit; i-- {
		out = append(out, r.data[i])
	}
	return out
}
