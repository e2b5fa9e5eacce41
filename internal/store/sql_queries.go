// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-user-keeper/models"
)

var usersTable = models.User{}.TableName()

// userColumns are the columns every read and update returns, in scan order.
// The password column is never selected.
var userColumns = []string{"id", "name", "email", "role", "created_at", "updated_at"}

// deletedUserColumns are returned by a delete, in scan order.
var deletedUserColumns = []string{"id", "name", "email", "role"}

func buildListUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		OrderBy("id").
		ToSql()
}

func buildGetUserQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
}

// buildUpdateUserQuery sets only the fields present in update, always bumps
// updated_at and returns the full row. update must not be empty.
func buildUpdateUserQuery(b sq.StatementBuilderType, id int64, update models.UserUpdate) (string, []any, error) {
	query := b.Update(usersTable)

	if update.Name != nil {
		query = query.Set(models.FieldName, *update.Name)
	}
	if update.Email != nil {
		query = query.Set(models.FieldEmail, *update.Email)
	}
	if update.Role != nil {
		query = query.Set(models.FieldRole, *update.Role)
	}

	return query.
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(usersTable).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(deletedUserColumns, ", ")).
		ToSql()
}
