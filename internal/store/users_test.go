package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	apierrors "github.com/lockehooper/fritter-fe/internal/errors"
)

func TestUserByIDScansFollowingArray(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "username", "following", "created_at"}).
		AddRow("u1", "alice", "{bob,carol}", time.Now())
	mock.ExpectQuery("FROM users").WithArgs("u1").WillReturnRows(rows)

	s := New(db)
	u, err := s.UserByID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(u.Following) != 2 || u.Following[0] != "bob" || u.Following[1] != "carol" {
		t.Fatalf("expected following [bob carol], got %v", u.Following)
	}
}

func TestFollowRejectsSelf(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "username", "following", "created_at"}).
		AddRow("u1", "alice", "{}", time.Now())
	mock.ExpectQuery("FROM users").WithArgs("u1").WillReturnRows(rows)

	s := New(db)
	err = s.Follow(context.Background(), "u1", "alice")
	if apierrors.KindOf(err) != apierrors.KindForbidden {
		t.Fatalf("expected Forbidden, got %v", err)
	}
	// No UPDATE should have been attempted.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFollowUnknownTarget(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	followerRows := sqlmock.NewRows([]string{"id", "username", "following", "created_at"}).
		AddRow("u1", "alice", "{}", time.Now())
	mock.ExpectQuery("FROM users").WithArgs("u1").WillReturnRows(followerRows)
	mock.ExpectQuery("FROM users").WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "following", "created_at"}))

	s := New(db)
	err = s.Follow(context.Background(), "u1", "ghost")
	if apierrors.KindOf(err) != apierrors.KindNotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestFollowAppendsToAdjacencyList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	followerRows := sqlmock.NewRows([]string{"id", "username", "following", "created_at"}).
		AddRow("u1", "alice", "{}", time.Now())
	targetRows := sqlmock.NewRows([]string{"id", "username", "following", "created_at"}).
		AddRow("u2", "bob", "{}", time.Now())
	mock.ExpectQuery("FROM users").WithArgs("u1").WillReturnRows(followerRows)
	mock.ExpectQuery("FROM users").WithArgs("bob").WillReturnRows(targetRows)
	mock.ExpectExec("array_append").
		WithArgs("u1", "bob").
		WillReturnResult(sqlmock.NewResult(0, 1))

	s := New(db)
	if err := s.Follow(context.Background(), "u1", "bob"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505"})

	s := New(db)
	_, err = s.CreateUser(context.Background(), "alice")
	if apierrors.KindOf(err) != apierrors.KindAlreadyExists {
		t.Fatalf("expected AlreadyExists, got %v", err)
	}
}
