package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/rommsen/BudgetBuddy-sub000/internal/models"
)

var (
	queryRuleCreate = `
		INSERT INTO rule(
			"name", "pattern", "patternKind", "field", "categoryId", "categoryName",
			"payeeOverride", "priority", "enabled", "createdAt", "updatedAt"
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW()
		)
		RETURNING
			"id", "createdAt", "updatedAt";
	`

	queryRuleUpdate = `UPDATE rule
		SET
		  "name" = $2,
		  "pattern" = $3,
		  "patternKind" = $4,
		  "field" = $5,
		  "categoryId" = $6,
		  "categoryName" = $7,
		  "payeeOverride" = $8,
		  "priority" = $9,
		  "enabled" = $10,
		  "updatedAt" = NOW()
		WHERE
		  id = $1
		RETURNING "createdAt", "updatedAt";`

	queryRuleDeleteByID = "DELETE FROM rule WHERE id = $1"

	queryRuleGetByID = `SELECT
		  "id",
		  "name",
		  "pattern",
		  "patternKind",
		  "field",
		  "categoryId",
		  "categoryName",
		  COALESCE("payeeOverride", '') as "payeeOverride",
		  "priority",
		  "enabled",
		  "lastMatchedAt",
		  "createdAt",
		  "updatedAt"
		FROM "rule"
		WHERE id = $1;`

	queryRuleTouchLastMatched = `UPDATE rule SET "lastMatchedAt" = NOW() WHERE id = ANY($1)`
)

var ruleColumns = []string{
	`"id"`,
	`"name"`,
	`"pattern"`,
	`"patternKind"`,
	`"field"`,
	`"categoryId"`,
	`"categoryName"`,
	`COALESCE("payeeOverride", '') as "payeeOverride"`,
	`"priority"`,
	`"enabled"`,
	`"lastMatchedAt"`,
	`"createdAt"`,
	`"updatedAt"`,
}

func buildListRulesQuery(cols []string, opts models.ListRulesOptions) sq.SelectBuilder {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.Select(cols...).From("rule")

	if opts.EnabledOnly {
		query = query.Where(sq.Eq{`"enabled"`: true})
	}

	// Priority ascending decides which rule wins a match; id breaks ties by
	// insertion order.
	return query.OrderBy(`"priority" ASC`, `"id" ASC`)
}
