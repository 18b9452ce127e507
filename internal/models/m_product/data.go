package m_product

import (
	"fmt"
	"strings"
)

// Statements over the products table, assembled from the column
// constants in fields.go. StmtSelectAll is a wire-level contract with
// the backing store and must stay exactly
// "select id, code, name from products".
var (
	StmtSelectAll = fmt.Sprintf("select %s, %s, %s from %s",
		ColID, ColCode, ColName, TableName)

	StmtSelectByID   = StmtSelectAll + fmt.Sprintf(" where %s = $1", ColID)
	StmtSelectByCode = StmtSelectAll + fmt.Sprintf(" where %s = $1", ColCode)

	StmtInsert = fmt.Sprintf("insert into %s (%s, %s) values ($1, $2) returning %s",
		TableName, ColCode, ColName, ColID)

	StmtUpdate = fmt.Sprintf("update %s set %s = $2, %s = $3 where %s = $1",
		TableName, ColCode, ColName, ColID)

	StmtDelete = fmt.Sprintf("delete from %s where %s = $1", TableName, ColID)
)

// SelectByExample builds a filtered read for the optional example
// fields. Nil fields are unconstrained; both nil yields StmtSelectAll.
func SelectByExample(code, name *string) (string, []any) {
	var (
		conds []string
		args  []any
	)

	if code != nil {
		args = append(args, *code)
		conds = append(conds, fmt.Sprintf("%s = $%d", ColCode, len(args)))
	}
	if name != nil {
		args = append(args, *name)
		conds = append(conds, fmt.Sprintf("%s = $%d", ColName, len(args)))
	}

	if len(conds) == 0 {
		return StmtSelectAll, nil
	}
	return StmtSelectAll + " where " + strings.Join(conds, " and "), args
}
