package awsid

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQL_RoundTrip(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`CREATE TABLE instances (id TEXT NOT NULL, ami TEXT NOT NULL, region TEXT NOT NULL)`)
	require.NoError(t, err)

	instance, err := ParseInstanceID("i-1234567890abcdef0")
	require.NoError(t, err)
	ami, err := ParseAMIID("ami-1234abcd")
	require.NoError(t, err)
	region := RegionEUCentral1

	_, err = db.Exec(`INSERT INTO instances (id, ami, region) VALUES (?, ?, ?)`, instance, ami, region)
	require.NoError(t, err)

	var (
		gotInstance InstanceID
		gotAMI      AMIID
		gotRegion   Region
	)
	row := db.QueryRow(`SELECT id, ami, region FROM instances`)
	require.NoError(t, row.Scan(&gotInstance, &gotAMI, &gotRegion))

	assert.Equal(t, instance, gotInstance)
	assert.Equal(t, ami, gotAMI)
	assert.Equal(t, region, gotRegion)
}

func TestSQL_StoredAsText(t *testing.T) {
	db := openTestDB(t)

	ami, err := ParseAMIID("ami-1234abcd")
	require.NoError(t, err)

	var raw string
	require.NoError(t, db.QueryRow(`SELECT ?`, ami).Scan(&raw))
	assert.Equal(t, "ami-1234abcd", raw)

	require.NoError(t, db.QueryRow(`SELECT ?`, RegionUSWest2).Scan(&raw))
	assert.Equal(t, "us-west-2", raw)
}

func TestSQL_ScanRejectsInvalidText(t *testing.T) {
	db := openTestDB(t)

	var ami AMIID
	err := db.QueryRow(`SELECT 'amx-12345678'`).Scan(&ami)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incorrect prefix")

	var region Region
	err = db.QueryRow(`SELECT 'us-north-1'`).Scan(&region)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown region: us-north-1")
}

func TestSQL_ValueRejectsZeroValues(t *testing.T) {
	var zeroAMI AMIID
	_, err := zeroAMI.Value()
	assert.Error(t, err)

	var zeroRegion Region
	_, err = zeroRegion.Value()
	assert.Error(t, err)
}

func TestSQL_ScanRejectsNonText(t *testing.T) {
	var ami AMIID
	assert.Error(t, ami.Scan(42))

	var region Region
	assert.Error(t, region.Scan(3.14))
}
