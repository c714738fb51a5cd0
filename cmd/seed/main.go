// seed loads a demo data set, builds indexes and runs a few queries.
// Useful as a smoke test and as a worked example of the table API.
package main

import (
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	bplus "rosterdb/bplustree"
	"rosterdb/logger"
	"rosterdb/table"
)

var seedRows = []struct {
	name   string
	age    int
	salary float64
	role   table.Role
}{
	{"Juan Pérez", 28, 45000, table.RoleEmployee},
	{"María García", 35, 75000, table.RoleManager},
	{"Carlos López", 28, 48000, table.RoleEmployee},
	{"Ana Martínez", 42, 150000, table.RoleOwner},
	{"Pedro Sánchez", 31, 52000, table.RoleEmployee},
	{"Laura Rodríguez", 35, 78000, table.RoleManager},
	{"Miguel Torres", 28, 46000, table.RoleEmployee},
	{"Sofia Ramírez", 39, 85000, table.RoleManager},
	{"Diego Flores", 25, 42000, table.RoleEmployee},
	{"Elena Castro", 45, 200000, table.RoleOwner},
}

func main() {
	zl, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zl.Sync()

	tbl, err := table.New(&table.Options{Logger: logger.NewZap(zl)})
	if err != nil {
		log.Fatalf("create table: %v", err)
	}
	defer tbl.Close()

	for _, r := range seedRows {
		if _, err := tbl.Add(r.name, r.age, r.salary, r.role); err != nil {
			log.Fatalf("add %s: %v", r.name, err)
		}
	}
	fmt.Printf("Seeded %d employees\n\n", tbl.Len())

	if err := tbl.CreateIndex(table.ColumnAge, table.IndexBPlusTree); err != nil {
		log.Fatalf("index age: %v", err)
	}
	if err := tbl.CreateIndex(table.ColumnRole, table.IndexHash); err != nil {
		log.Fatalf("index role: %v", err)
	}
	if err := tbl.CreateIndex(table.ColumnName, table.IndexHash); err != nil {
		log.Fatalf("index name: %v", err)
	}

	fmt.Println("== employees aged 28 ==")
	for _, e := range tbl.FindByAge(28) {
		fmt.Printf("  #%d %s ($%.0f)\n", e.ID, e.Name, e.Salary)
	}

	fmt.Println("\n== employees aged 30-40 ==")
	inRange, err := tbl.FindByAgeRange(30, 40)
	if err != nil {
		log.Fatalf("range query: %v", err)
	}
	for _, e := range inRange {
		fmt.Printf("  #%d %s (%d years)\n", e.ID, e.Name, e.Age)
	}

	fmt.Println("\n== managers ==")
	for _, e := range tbl.FindByRole(table.RoleManager) {
		fmt.Printf("  #%d %s\n", e.ID, e.Name)
	}

	fmt.Println("\n== index stats ==")
	for _, s := range tbl.Stats() {
		fmt.Printf("  column=%-8s kind=%-10s uniqueValues=%d\n", s.Column, s.Kind, s.UniqueValues)
	}

	// Peek at the underlying structure: the same keys in a bare tree.
	fmt.Println("\n== age index structure (order 4) ==")
	tree, err := bplus.New[int](table.DefaultBPlusOrder)
	if err != nil {
		log.Fatalf("new tree: %v", err)
	}
	for id, r := range seedRows {
		tree.Insert(r.age, id)
	}
	tree.DumpTo(os.Stdout)
	fmt.Printf("height=%d keys=%d\n", tree.Height(), tree.KeyCount())
}
