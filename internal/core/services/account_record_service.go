package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	portsrepo "github.com/myaccountdemo/account_api/internal/core/ports/repositories"
	portssvc "github.com/myaccountdemo/account_api/internal/core/ports/services"
	"github.com/myaccountdemo/account_api/internal/dto"
	"github.com/myaccountdemo/account_api/internal/middleware"
	"github.com/myaccountdemo/account_api/internal/models"
	"github.com/myaccountdemo/account_api/internal/utils/mapping"
)

const (
	defaultRecordsTake = 10
	defaultSortField   = "get_date"
	defaultSortDir     = "DESC"
)

// AccountRecordService serves the paginated records grid.
type AccountRecordService struct {
	repo portsrepo.AccountRecordRepository
}

func NewAccountRecordService(repo portsrepo.AccountRecordRepository) *AccountRecordService {
	return &AccountRecordService{repo: repo}
}

var _ portssvc.AccountRecordSvcFacade = (*AccountRecordService)(nil)

func (s *AccountRecordService) GetRecords(ctx context.Context, req dto.AccountRecordsRequest) dto.AccountRecordsResponse {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(req.Username) == "" {
		return failRecordsResponse("Username is required")
	}

	fromDate, err := parseGridDate(req.FromDate)
	if err != nil {
		return failRecordsResponse(fmt.Sprintf("Invalid from_date: %v", err))
	}
	toDate, err := parseGridDate(req.ToDate)
	if err != nil {
		return failRecordsResponse(fmt.Sprintf("Invalid to_date: %v", err))
	}

	take := req.Take
	if take <= 0 {
		take = defaultRecordsTake
	}

	sortBy, sortDir := resolveSort(req.Sort)

	records, err := s.repo.FetchRecords(ctx, portsrepo.AccountRecordsQuery{
		Username: req.Username,
		FromDate: fromDate,
		ToDate:   toDate,
		Skip:     req.Skip,
		Take:     take,
		SortBy:   sortBy,
		SortDir:  sortDir,
	})
	if err != nil {
		logger.ErrorContext(ctx, "Account records query failed", "username", req.Username, "error", err)
		return failRecordsResponse(fmt.Sprintf("Error retrieving records: %v", err))
	}

	summary := mapping.ApplySummaryTotals(records)
	return dto.AccountRecordsResponse{
		Envelope:            dto.NewEnvelope("Records retrieved successfully", records).WithTotal(summary.TotalCount),
		TotalGetMoney:       summary.TotalGetMoney,
		TotalGiveMoney:      summary.TotalGiveMoney,
		TotalInterestAmount: summary.TotalInterestAmount,
		NetBalance:          summary.NetBalance,
	}
}

// resolveSort maps the grid's sort descriptors onto routine arguments. Only
// the first descriptor is honored; an omitted sort falls back to newest-first
// by transaction date, while a descriptor without a direction sorts ascending.
func resolveSort(sort []dto.SortDescriptor) (string, string) {
	if len(sort) == 0 || sort[0].Field == "" {
		return defaultSortField, defaultSortDir
	}
	dir := sort[0].Dir
	if dir == "" {
		dir = "asc"
	}
	return sort[0].Field, strings.ToUpper(dir)
}

func parseGridDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized date %q", value)
}

func failRecordsResponse(message string) dto.AccountRecordsResponse {
	return dto.AccountRecordsResponse{
		Envelope: dto.FailEnvelope[[]models.AccountRecord](message),
	}
}
