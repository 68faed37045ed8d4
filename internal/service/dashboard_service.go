package service

import (
	"github.com/gestaopub/contratos-service/internal/derive"
	"github.com/gestaopub/contratos-service/internal/model"
	"github.com/gestaopub/contratos-service/internal/store"
)

// DashboardService assembles the console's landing-page view: aggregate
// numbers plus the expiring-contracts warning list.
type DashboardService struct {
	store        *store.Store
	expiringDays int
}

func NewDashboardService(st *store.Store, expiringDays int) *DashboardService {
	if expiringDays <= 0 {
		expiringDays = derive.DefaultExpiringDays
	}
	return &DashboardService{store: st, expiringDays: expiringDays}
}

func (s *DashboardService) Stats(today model.Date) derive.DashboardStats {
	return derive.Dashboard(
		s.store.Contracts(),
		s.store.Suppliers(),
		s.store.Departments(),
		s.store.Payments(),
		s.store.Invoices(),
		today,
	)
}

// Expiring returns the contracts ending within the configured window.
func (s *DashboardService) Expiring(today model.Date) []model.Contract {
	return derive.ExpiringContracts(s.store.Contracts(), s.expiringDays, today)
}

// RecentContracts returns up to n newest contracts for the landing-page table.
func (s *DashboardService) RecentContracts(n int) []model.Contract {
	contracts := s.store.Contracts()
	if len(contracts) > n {
		contracts = contracts[:n]
	}
	return contracts
}
