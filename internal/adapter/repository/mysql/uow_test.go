package mysql

import (
	"context"
	"errors"
	"sync"
	"testing"

	"rentify-backend/internal/domain/apperr"
	brDomain "rentify-backend/internal/domain/borrowrequest"
	historyDomain "rentify-backend/internal/domain/history"
	"rentify-backend/internal/domain/uow"
	"rentify-backend/internal/usecase/borrow"

	"gorm.io/gorm"
)

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	guow := NewGormUoW(db)

	var reqID uint64
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		req := &brDomain.BorrowRequest{ItemID: 1, BorrowerID: 2, LenderID: 3, Status: brDomain.StatusPending}
		if err := r.Requests.Create(ctx, req); err != nil {
			return err
		}
		reqID = req.ID
		return r.History.Create(ctx, &historyDomain.Record{UserID: 2, ItemID: 1, Status: historyDomain.StatusPending})
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}
	if _, err := NewBorrowRequestRepository(db).GetByID(ctx, reqID); err != nil {
		t.Fatalf("request not committed: %v", err)
	}
	recs, _ := NewHistoryRepository(db).List(ctx, 2)
	if len(recs) != 1 {
		t.Fatalf("history not committed: %d", len(recs))
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	guow := NewGormUoW(db)
	wantErr := errors.New("boom")

	var reqID uint64
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		req := &brDomain.BorrowRequest{ItemID: 1, BorrowerID: 2, LenderID: 3, Status: brDomain.StatusPending}
		if err := r.Requests.Create(ctx, req); err != nil {
			return err
		}
		reqID = req.ID
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("want %v, got %v", wantErr, err)
	}
	if _, err := NewBorrowRequestRepository(db).GetByID(ctx, reqID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected rollback, got %v", err)
	}
}

func TestGormUoW_WithinRequestTx(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	guow := NewGormUoW(db)
	req := seedRequest(t, db, 1, 2, 3, brDomain.StatusPending)

	err := guow.WithinRequestTx(ctx, req.ID, func(r uow.Repos, cur *brDomain.BorrowRequest) error {
		if cur.ID != req.ID || cur.Status != brDomain.StatusPending {
			t.Fatalf("locked row mismatch: %+v", cur)
		}
		_, err := r.Requests.UpdateStatus(ctx, cur.ID, brDomain.StatusCanceled, nil)
		return err
	})
	if err != nil {
		t.Fatalf("WithinRequestTx: %v", err)
	}
	got, _ := NewBorrowRequestRepository(db).GetByID(ctx, req.ID)
	if got.Status != brDomain.StatusCanceled {
		t.Fatalf("status=%s", got.Status)
	}

	called := false
	err = guow.WithinRequestTx(ctx, 999, func(uow.Repos, *brDomain.BorrowRequest) error {
		called = true
		return nil
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) || called {
		t.Fatalf("missing request: err=%v called=%v", err, called)
	}
}

// Two pending requests of one borrower approved at once: exactly one wins and
// the borrower never ends up with two approved rows.
func TestApproveRace_OneWinner(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	it := seedItem(t, db, "tent", "Available")
	u := seedUser(t, db, "bob")
	a := seedRequest(t, db, it.ID, u.ID, 3, brDomain.StatusPending)
	b := seedRequest(t, db, it.ID, u.ID, 3, brDomain.StatusPending)

	uc := borrow.NewUsecase(NewItemRepository(db), NewBorrowRequestRepository(db), NewGormUoW(db), nil)

	for round := 0; round < 5; round++ {
		var wg sync.WaitGroup
		errs := make([]error, 2)
		start := make(chan struct{})
		for i, id := range []uint64{a.ID, b.ID} {
			wg.Add(1)
			go func(i int, id uint64) {
				defer wg.Done()
				<-start
				errs[i] = uc.SetStatus(ctx, id, brDomain.StatusApproved, nil)
			}(i, id)
		}
		close(start)
		wg.Wait()

		wins := 0
		for _, err := range errs {
			switch {
			case err == nil:
				wins++
			case apperr.KindOf(err) != apperr.KindExclusivityViolation:
				t.Fatalf("round %d: unexpected err %v", round, err)
			}
		}
		if wins != 1 {
			t.Fatalf("round %d: want exactly one approval, got %d", round, wins)
		}

		var approved int64
		db.Model(&brDomain.BorrowRequest{}).
			Where("borrower_id = ? AND status = ?", u.ID, brDomain.StatusApproved).
			Count(&approved)
		if approved != 1 {
			t.Fatalf("round %d: %d approved rows for one borrower", round, approved)
		}

		// reset both rows for the next round
		db.Model(&brDomain.BorrowRequest{}).
			Where("request_id IN ?", []uint64{a.ID, b.ID}).
			Update("status", brDomain.StatusPending)
	}
}

func TestArchive_CommitsBothSides(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	it := seedItem(t, db, "tent", "Available")
	u := seedUser(t, db, "bob")
	req := seedRequest(t, db, it.ID, u.ID, 3, brDomain.StatusApproved)

	uc := borrow.NewUsecase(NewItemRepository(db), NewBorrowRequestRepository(db), NewGormUoW(db), nil)
	hid, err := uc.Return(ctx, req.ID, false)
	if err != nil {
		t.Fatalf("Return: %v", err)
	}

	rec, err := NewHistoryRepository(db).GetByID(ctx, hid)
	if err != nil {
		t.Fatalf("history row missing: %v", err)
	}
	if rec.UserID != u.ID || rec.ItemID != it.ID || rec.Status != historyDomain.StatusReturned || rec.BorrowerReason != "need it" {
		t.Fatalf("copied fields wrong: %+v", rec)
	}
	if rec.BorrowDate == nil || rec.ReturnDate == nil {
		t.Fatalf("dates not carried: %+v", rec)
	}
	if _, err := NewBorrowRequestRepository(db).GetByID(ctx, req.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("request row must be gone, got %v", err)
	}
}

// A failing delete must take the history insert down with it.
func TestArchive_RollsBackOnDeleteFailure(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	it := seedItem(t, db, "tent", "Available")
	u := seedUser(t, db, "bob")
	req := seedRequest(t, db, it.ID, u.ID, 3, brDomain.StatusApproved)

	injected := errors.New("injected delete failure")
	err := db.Callback().Delete().Before("gorm:delete").Register("test:fail_request_delete", func(tx *gorm.DB) {
		if tx.Statement.Table == "borrow_requests" {
			_ = tx.AddError(injected)
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	uc := borrow.NewUsecase(NewItemRepository(db), NewBorrowRequestRepository(db), NewGormUoW(db), nil)
	_, err = uc.Return(ctx, req.ID, true)
	if apperr.KindOf(err) != apperr.KindStore {
		t.Fatalf("want store error, got %v", err)
	}

	var histories int64
	db.Model(&historyDomain.Record{}).Count(&histories)
	if histories != 0 {
		t.Fatalf("history insert survived a failed archive: %d rows", histories)
	}
	got, err := NewBorrowRequestRepository(db).GetByID(ctx, req.ID)
	if err != nil || got.Status != brDomain.StatusApproved {
		t.Fatalf("request must be untouched: %+v %v", got, err)
	}
}
