package ensembl

import (
	"database/sql"
	"fmt"
	"sort"

	_ "github.com/go-sql-driver/mysql"

	homolog "github.com/GavinHuttley/homologsampler"
)

func open(account *homolog.HostAccount, dbname string) (*sql.DB, error) {
	db, err := sql.Open("mysql", account.DSN(dbname))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to %s: %v", account, err)
	}
	return db, nil
}

// ListDatabases returns the Ensembl databases visible at a host.
// dbType restricts to e.g. "core" or "compara" when non-empty, and
// release restricts to a single release when positive. Results are
// sorted by release then name.
func ListDatabases(account *homolog.HostAccount, dbType string, release int) ([]DbName, error) {
	db, err := open(account, "")
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query("SHOW DATABASES")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []DbName
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		dbn, err := ParseDbName(name)
		if err != nil {
			continue // not an Ensembl database.
		}
		if dbType != "" && dbn.Type != dbType {
			continue
		}
		if release > 0 && dbn.Release != release {
			continue
		}
		names = append(names, dbn)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	sort.Slice(names, func(i, j int) bool {
		if names[i].Release != names[j].Release {
			return names[i].Release < names[j].Release
		}
		return names[i].Name < names[j].Name
	})
	return names, nil
}

// findDb locates the database of dbType for a species prefix. When
// release is zero the latest available release is used.
func findDb(account *homolog.HostAccount, prefix, dbType string, release int) (DbName, error) {
	names, err := ListDatabases(account, dbType, release)
	if err != nil {
		return DbName{}, err
	}
	found := DbName{}
	for _, n := range names {
		if prefix != "" && n.Prefix != prefix {
			continue
		}
		if n.Release >= found.Release {
			found = n
		}
	}
	if found.Name == "" {
		return DbName{}, fmt.Errorf("no %s database for %q (release %d) at %s",
			dbType, prefix, release, account)
	}
	return found, nil
}

// AvailableSpecies builds the display table of core and compara
// databases at a host. Species parsed out of the database names are
// registered, so name lookups resolve them afterwards.
func AvailableSpecies(account *homolog.HostAccount, release int) (*homolog.Table, error) {
	var names []DbName
	for _, dbType := range []string{"core", "compara"} {
		got, err := ListDatabases(account, dbType, release)
		if err != nil {
			return nil, err
		}
		names = append(names, got...)
	}
	return speciesTableFrom(names), nil
}

// speciesTableFrom renders parsed database names, registering each
// per-species one on the way.
func speciesTableFrom(names []DbName) *homolog.Table {
	table := homolog.NewTable("Release", "Db Name", "Species", "Common Name")
	for _, n := range names {
		species, common := n.Species(), "-"
		if species == "" {
			species = "-"
		} else {
			homolog.RegisterSpecies(species, "")
			common = homolog.CommonName(species)
		}
		table.Append(fmt.Sprintf("%d", n.Release), n.Name, species, common)
	}
	table.SortBy("Release", "Db Name")
	return table
}
