package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers the handlers care about.
const (
	mysqlDupEntry     = 1062 // duplicate key
	mysqlRowReferred  = 1451 // cannot delete, row is referenced
	mysqlNoReferenced = 1452 // cannot insert, referenced row missing
)

func isMySQLError(err error, number uint16) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == number
}

func isDuplicate(err error) bool     { return isMySQLError(err, mysqlDupEntry) }
func isReferenced(err error) bool    { return isMySQLError(err, mysqlRowReferred) }
func isMissingParent(err error) bool { return isMySQLError(err, mysqlNoReferenced) }
