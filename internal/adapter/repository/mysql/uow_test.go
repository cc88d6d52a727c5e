package mysql

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	memberDomain "welfare-backend/internal/domain/member"
	"welfare-backend/internal/domain/uow"
	"welfare-backend/pkg/id"
)

func TestUoW_Commit(t *testing.T) {
	db := openTestDB(t)
	unit := NewGormUoW(db)
	ctx := context.Background()

	memberID := id.NewID32()
	err := unit.WithinTx(ctx, func(r uow.Repos) error {
		return r.Members.Create(ctx, &memberDomain.Member{
			MemberID: memberID,
			Email:    "commit@example.com",
		})
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}

	if _, err := NewMemberRepository(db).GetByMemberID(ctx, memberID); err != nil {
		t.Fatalf("member missing after commit: %v", err)
	}
}

func TestUoW_Rollback(t *testing.T) {
	db := openTestDB(t)
	unit := NewGormUoW(db)
	ctx := context.Background()

	memberID := id.NewID32()
	boom := errors.New("boom")
	err := unit.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Members.Create(ctx, &memberDomain.Member{
			MemberID: memberID,
			Email:    "rollback@example.com",
		}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}

	_, err = NewMemberRepository(db).GetByMemberID(ctx, memberID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("member should not survive rollback, got %v", err)
	}
}
