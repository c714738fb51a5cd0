// rosterdb: interactive employee table with secondary indexes.
// Run with -v for structured debug logging of index builds and CSV loads.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"rosterdb/logger"
	"rosterdb/table"
)

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	order := flag.Int("order", table.DefaultBPlusOrder, "order of B+ tree indexes")
	flag.Parse()

	var tlog table.Logger = table.DiscardLogger{}
	if *verbose {
		zl, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("init logger: %v", err)
		}
		defer zl.Sync()
		tlog = logger.NewZap(zl)
	}

	tbl, err := table.New(&table.Options{BPlusOrder: *order, Logger: tlog})
	if err != nil {
		log.Fatalf("create table: %v", err)
	}
	defer tbl.Close()

	scanner := bufio.NewScanner(os.Stdin)
	// REPL
	for {
		printMenu()
		fmt.Print("> ")

		if !scanner.Scan() { // Ctrl+D pressed
			break
		}
		choice := strings.TrimSpace(scanner.Text())

		switch choice {
		case "1":
			addEmployee(scanner, tbl)
		case "2":
			createIndex(scanner, tbl)
		case "3":
			findByAge(scanner, tbl)
		case "4":
			findByName(scanner, tbl)
		case "5":
			findByRole(scanner, tbl)
		case "6":
			findByAgeRange(scanner, tbl)
		case "7":
			listAll(tbl)
		case "8":
			showStats(tbl)
		case "9":
			loadSampleData(tbl)
		case "10":
			loadCSVFile(scanner, tbl)
		case "0", "exit":
			return
		case "":
			continue
		default:
			fmt.Println("Unknown option")
		}
	}
}

func printMenu() {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("EMPLOYEE TABLE WITH SECONDARY INDEXES")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("1. Add employee")
	fmt.Println("2. Create index on column")
	fmt.Println("3. Find by age")
	fmt.Println("4. Find by name")
	fmt.Println("5. Find by role")
	fmt.Println("6. Find by age range")
	fmt.Println("7. List all employees")
	fmt.Println("8. Show index stats")
	fmt.Println("9. Load sample data")
	fmt.Println("10. Load CSV file")
	fmt.Println("0. Exit")
	fmt.Println(strings.Repeat("=", 60))
}

func prompt(scanner *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func promptInt(scanner *bufio.Scanner, label string) (int, bool) {
	s, ok := prompt(scanner, label)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		fmt.Println("Error: expected a whole number")
		return 0, false
	}
	return n, true
}

func addEmployee(scanner *bufio.Scanner, tbl *table.Table) {
	fmt.Println("\n--- Add Employee ---")
	name, ok := prompt(scanner, "Name: ")
	if !ok || name == "" {
		fmt.Println("Error: name must not be empty")
		return
	}
	age, ok := promptInt(scanner, "Age: ")
	if !ok {
		return
	}
	salaryStr, ok := prompt(scanner, "Salary: ")
	if !ok {
		return
	}
	salary, err := strconv.ParseFloat(salaryStr, 64)
	if err != nil {
		fmt.Println("Error: expected a number")
		return
	}
	fmt.Printf("Available roles: %s, %s, %s\n", table.RoleEmployee, table.RoleManager, table.RoleOwner)
	roleStr, ok := prompt(scanner, "Role: ")
	if !ok {
		return
	}

	id, err := tbl.Add(name, age, salary, table.Role(strings.ToLower(roleStr)))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Employee %s added with id %d\n", name, id)
}

func createIndex(scanner *bufio.Scanner, tbl *table.Table) {
	fmt.Println("\n--- Create Index ---")
	fmt.Print("Columns:")
	for _, col := range table.Columns() {
		fmt.Printf(" %s", col)
	}
	fmt.Println()
	colStr, ok := prompt(scanner, "Column to index: ")
	if !ok {
		return
	}
	kindStr, ok := prompt(scanner, "Index kind (bplustree/hash, default bplustree): ")
	if !ok {
		return
	}

	kind := table.IndexBPlusTree
	if strings.EqualFold(kindStr, "hash") {
		kind = table.IndexHash
	}
	if err := tbl.CreateIndex(table.Column(strings.ToLower(colStr)), kind); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Index created on column %q\n", colStr)
}

func findByAge(scanner *bufio.Scanner, tbl *table.Table) {
	age, ok := promptInt(scanner, "\nAge to find: ")
	if !ok {
		return
	}
	printEmployees(tbl.FindByAge(age))
}

func findByName(scanner *bufio.Scanner, tbl *table.Table) {
	name, ok := prompt(scanner, "\nName to find: ")
	if !ok {
		return
	}
	printEmployees(tbl.FindByName(name))
}

func findByRole(scanner *bufio.Scanner, tbl *table.Table) {
	role, ok := prompt(scanner, "\nRole to find: ")
	if !ok {
		return
	}
	printEmployees(tbl.FindByRole(table.Role(strings.ToLower(role))))
}

func findByAgeRange(scanner *bufio.Scanner, tbl *table.Table) {
	min, ok := promptInt(scanner, "\nMinimum age: ")
	if !ok {
		return
	}
	max, ok := promptInt(scanner, "Maximum age: ")
	if !ok {
		return
	}
	got, err := tbl.FindByAgeRange(min, max)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	printEmployees(got)
}

func listAll(tbl *table.Table) {
	all := tbl.All()
	if len(all) == 0 {
		fmt.Println("\nNo employees in the table.")
		return
	}
	fmt.Printf("\n%-4s %-20s %-6s %-12s %-10s\n", "ID", "Name", "Age", "Salary", "Role")
	fmt.Println(strings.Repeat("-", 60))
	for _, e := range all {
		fmt.Printf("%-4d %-20s %-6d $%-11.2f %-10s\n", e.ID, e.Name, e.Age, e.Salary, e.Role)
	}
	fmt.Printf("\nTotal: %d employees\n", len(all))
}

func showStats(tbl *table.Table) {
	stats := tbl.Stats()
	if len(stats) == 0 {
		fmt.Println("\nNo indexes created.")
		return
	}
	fmt.Println("\n--- Index Stats ---")
	for _, s := range stats {
		fmt.Printf("column=%-8s kind=%-10s uniqueValues=%d\n", s.Column, s.Kind, s.UniqueValues)
	}
}

func loadSampleData(tbl *table.Table) {
	samples := []struct {
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
	for _, s := range samples {
		if _, err := tbl.Add(s.name, s.age, s.salary, s.role); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}
	fmt.Printf("\nLoaded %d sample employees\n", len(samples))
}

func loadCSVFile(scanner *bufio.Scanner, tbl *table.Table) {
	path, ok := prompt(scanner, "\nCSV file path: ")
	if !ok || path == "" {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer f.Close()

	n, err := tbl.LoadCSV(f)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Loaded %d employees from %s\n", n, path)
}

func printEmployees(found []table.Employee) {
	if len(found) == 0 {
		fmt.Println("No matching employees")
		return
	}
	fmt.Printf("Found %d employee(s):\n", len(found))
	for _, e := range found {
		fmt.Printf("  - #%d %s: %d years, $%.2f (%s)\n", e.ID, e.Name, e.Age, e.Salary, e.Role)
	}
}
