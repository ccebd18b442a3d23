package service

import (
	"os"

	"github.com/shivamstore/storefront/database"
)

const testDBPath = "test.db"

func setup() {
	os.Remove(testDBPath)
	database.InitDB(testDBPath)
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove(testDBPath)
}
