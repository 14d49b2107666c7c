package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes mapped onto domain errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// Constraint names referenced when translating violations.
const (
	constraintSingleActive   = "idx_boss_instances_single_active"
	constraintDropRuleItem   = "boss_drop_rules_item_id_fkey"
	constraintDropRuleTmpl   = "boss_drop_rules_template_id_fkey"
	constraintInventoryItem  = "player_inventory_item_id_fkey"
	constraintEquipmentOwner = "player_equipment_player_id_fkey"
	constraintInventoryOwner = "player_inventory_player_id_fkey"
	constraintSkillOwner     = "player_skills_player_id_fkey"
	constraintInstanceTmpl   = "boss_instances_template_id_fkey"
	constraintPlayerUsername = "idx_players_username"
)

// pgError unwraps err into a PostgreSQL error when possible.
func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// isDuplicateKeyError checks if a pgx error is a unique constraint violation.
func isDuplicateKeyError(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == codeUniqueViolation
}

// violates reports whether err is a violation of class code on the named constraint.
func violates(err error, code, constraint string) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == code && pgErr.ConstraintName == constraint
}
