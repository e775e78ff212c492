package homologsampler

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EnsemblAccountEnv is the environment variable holding MySQL account
// details as "host user password [port]".
const EnsemblAccountEnv = "ENSEMBL_ACCOUNT"

// HostAccount holds MySQL connection details for an Ensembl host.
type HostAccount struct {
	Host     string
	User     string
	Password string
	Port     int
}

// DefaultAccount is the anonymous UK Ensembl server. Slow.
func DefaultAccount() *HostAccount {
	return &HostAccount{Host: "ensembldb.ensembl.org", User: "anonymous", Port: 3306}
}

// ParseHostAccount parses "host user password [port]".
func ParseHostAccount(s string) (*HostAccount, error) {
	fields := strings.Fields(s)
	if len(fields) < 3 || len(fields) > 4 {
		return nil, fmt.Errorf("expect 'host user password [port]', got %q", s)
	}
	acc := &HostAccount{
		Host:     fields[0],
		User:     fields[1],
		Password: fields[2],
		Port:     3306,
	}
	if len(fields) == 4 {
		port, err := strconv.Atoi(fields[3])
		if err != nil {
			return nil, fmt.Errorf("bad port %q: %v", fields[3], err)
		}
		acc.Port = port
	}
	return acc, nil
}

// AccountFromEnv reads ENSEMBL_ACCOUNT. A nil account with nil error
// means the variable was not set.
func AccountFromEnv() (*HostAccount, error) {
	s := os.Getenv(EnsemblAccountEnv)
	if s == "" {
		return nil, nil
	}
	return ParseHostAccount(s)
}

// DSN returns a go-sql-driver data source name for dbname, which may
// be empty to connect without selecting a database.
func (a *HostAccount) DSN(dbname string) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s", a.User, a.Password, a.Host, a.Port, dbname)
}

// String renders the account without the password.
func (a *HostAccount) String() string {
	return fmt.Sprintf("%s@%s:%d", a.User, a.Host, a.Port)
}
