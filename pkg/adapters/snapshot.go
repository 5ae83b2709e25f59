package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/models/store"
	"github.com/rs/zerolog"
)

const (
	DefaultCommissionRate = 20
	DefaultCommissionRole = "Agency"
	DefaultUserRole       = "user"
	DefaultTrainerName    = "Unknown Trainer"
	DefaultSellerID       = "Unknown"
	DefaultProductID      = "unknown-product"
	DefaultProductName    = "Unknown Product"
	UnknownDate           = "Unknown Date"
)

// MapStoreSnapshotToDomain fills every default once, at record construction. Entries that
// are not JSON objects are skipped and reported in the snapshot diagnostics.
func MapStoreSnapshotToDomain(ctx context.Context, snap store.Snapshot) domain.Snapshot {
	logger := zerolog.Ctx(ctx)

	out := domain.Snapshot{
		Commissions: make([]domain.CommissionRecord, 0, len(snap.Commissions)),
		Trainings:   make([]domain.TrainingProgram, 0, len(snap.Trainings)),
		Sales:       make([]domain.SalesTransaction, 0, len(snap.SalesDetails)),
		Diagnostics: append([]string(nil), snap.Diagnostics...),
	}

	skip := func(collection string, e store.Entry, err error) {
		logger.Warn().Err(err).Str("collection", collection).Str("id", e.ID).Msg("skipping malformed record")
		out.Diagnostics = append(out.Diagnostics, fmt.Sprintf("%s/%s: %v", collection, e.ID, err))
	}

	for _, e := range snap.Users {
		u, err := MapStoreUserToDomain(e)
		if err != nil {
			skip(store.CollectionUsers, e, err)
			continue
		}
		*out.Users.GetOrCreate(u.ID, func() domain.User { return u }) = u
	}

	for _, e := range snap.Commissions {
		c, err := MapStoreCommissionToDomain(e)
		if err != nil {
			skip(store.CollectionCommissions, e, err)
			continue
		}
		out.Commissions = append(out.Commissions, c)
	}

	for _, e := range snap.Trainings {
		t, err := MapStoreTrainingToDomain(e)
		if err != nil {
			skip(store.CollectionTrainings, e, err)
			continue
		}
		out.Trainings = append(out.Trainings, t)
	}

	for _, e := range snap.SalesDetails {
		s, err := MapStoreSaleToDomain(e)
		if err != nil {
			skip(store.CollectionSalesDetails, e, err)
			continue
		}
		out.Sales = append(out.Sales, s)
	}

	return out
}

func MapStoreUserToDomain(e store.Entry) (domain.User, error) {
	var rec store.UserRecord
	if err := decodeObject(e.Raw, &rec); err != nil {
		return domain.User{}, err
	}
	return domain.User{
		ID:    e.ID,
		Name:  firstText(domain.FallbackUserName(e.ID), rec.Name, rec.DisplayName),
		Email: firstText("", rec.Email),
		Role:  firstText(DefaultUserRole, rec.Role),
	}, nil
}

func MapStoreCommissionToDomain(e store.Entry) (domain.CommissionRecord, error) {
	var rec store.CommissionRecord
	if err := decodeObject(e.Raw, &rec); err != nil {
		return domain.CommissionRecord{}, err
	}

	out := domain.CommissionRecord{
		ID:              e.ID,
		BaseOrderAmount: toNumber(rec.Amount, 0),
		OrderID:         firstText(e.ID, rec.OrderID),
		ProductName:     firstText(DefaultProductName, rec.ProductName),
		Date:            firstText(UnknownDate, rec.Date, rec.CreatedAt),
		Shares:          make([]domain.CommissionShare, 0, len(rec.Commissions)),
	}

	for _, s := range rec.Commissions {
		share, err := decodeShare(s.Raw)
		if err != nil {
			return domain.CommissionRecord{}, fmt.Errorf("commission share %q: %w", s.ID, err)
		}
		out.Shares = append(out.Shares, domain.CommissionShare{
			UserID: s.ID,
			Amount: toNumber(share.Amount, 0),
			Rate:   toNumber(share.Rate, DefaultCommissionRate),
			Role:   firstText(DefaultCommissionRole, share.Role),
		})
	}

	return out, nil
}

func MapStoreTrainingToDomain(e store.Entry) (domain.TrainingProgram, error) {
	var rec store.TrainingRecord
	if err := decodeObject(e.Raw, &rec); err != nil {
		return domain.TrainingProgram{}, err
	}
	return domain.TrainingProgram{
		ID:          e.ID,
		Title:       firstText("", rec.Title),
		TrainerName: firstText(DefaultTrainerName, rec.TrainerName),
		Fees:        toNumber(rec.Fees, 0),
		JoinedCount: toInt(rec.JoinedCount, 0),
		Duration:    firstText("", rec.Duration),
		Status:      ParseTrainingStatus(firstText("", rec.Status)),
		Description: firstText("", rec.Description),
	}, nil
}

func MapStoreSaleToDomain(e store.Entry) (domain.SalesTransaction, error) {
	var rec store.SaleRecord
	if err := decodeObject(e.Raw, &rec); err != nil {
		return domain.SalesTransaction{}, err
	}
	return domain.SalesTransaction{
		ID:          e.ID,
		Amount:      toNumber(rec.Amount, 0),
		SellerID:    firstText(DefaultSellerID, rec.SellerID, rec.UserID),
		ProductID:   firstText(DefaultProductID, rec.ProductID),
		ProductName: firstText(DefaultProductName, rec.ProductName, rec.Name),
		Date:        firstText(UnknownDate, rec.Date, rec.SaleDate, rec.CreatedAt, rec.Timestamp),
	}, nil
}

// ParseTrainingStatus is case-insensitive; anything unrecognized counts as pending.
func ParseTrainingStatus(s string) domain.TrainingStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(domain.TrainingStatusCompleted):
		return domain.TrainingStatusCompleted
	case string(domain.TrainingStatusActive):
		return domain.TrainingStatusActive
	default:
		return domain.TrainingStatusPending
	}
}

func decodeObject(raw json.RawMessage, v any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("record is not an object")
	}
	return json.Unmarshal(trimmed, v)
}

// decodeShare also accepts the short form {"u1": 200}.
func decodeShare(raw json.RawMessage) (store.CommissionShare, error) {
	var share store.CommissionShare
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return share, err
	}
	switch v.(type) {
	case map[string]any:
		err := json.Unmarshal(raw, &share)
		return share, err
	case float64, string:
		share.Amount = v
		return share, nil
	default:
		return share, fmt.Errorf("unsupported share value %s", string(raw))
	}
}
