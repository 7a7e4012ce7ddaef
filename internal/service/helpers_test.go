package service

import (
	"testing"

	"github.com/crewplanhq/crewplan/internal/db"
	"github.com/crewplanhq/crewplan/internal/repository"
	"github.com/crewplanhq/crewplan/internal/testutil"
)

func setupRepos(t *testing.T) (
	*repository.SQLiteTeamRepo,
	*repository.SQLiteProjectRepo,
	*repository.SQLiteAssignmentRepo,
	*repository.SQLitePlanRepo,
	db.UnitOfWork,
) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return repository.NewSQLiteTeamRepo(database),
		repository.NewSQLiteProjectRepo(database),
		repository.NewSQLiteAssignmentRepo(database),
		repository.NewSQLitePlanRepo(database),
		testutil.NewTestUoW(database)
}
