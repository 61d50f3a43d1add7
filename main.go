package main

import (
	"fmt"
	"log"

	"github.com/asaidimu/go-sift/core/filter"
	"github.com/asaidimu/go-sift/core/rows"
)

func main() {
	engine, err := filter.New(nil)
	if err != nil {
		log.Fatalf("Failed to initialize engine: %v", err)
	}

	// A result set as it might come back from a search: one row per entry,
	// identifiers are the original positions.
	collection := rows.NewCollection(
		map[string]any{"name": "Alice Smith", "age": 30, "city": "Nairobi"},
		map[string]any{"name": "Bob Jones", "age": 25, "city": "Mombasa"},
		map[string]any{"name": "Albert Smithson", "age": 40, "city": "Nairobi"},
	)

	// Reference values as bound from a search form. An empty value is a
	// no-op filter, so leaving "city" blank filters by name only.
	attrs := rows.NewAttributes().
		Set("name", "smith").
		Set("city", "")

	result, err := engine.Filter(collection, attrs)
	if err != nil {
		log.Fatalf("Filter failed: %v", err)
	}

	fmt.Println("----------------------------------------")
	fmt.Printf("%-5s %-20s %-10s\n", "ID", "Name", "City")
	fmt.Println("----------------------------------------")
	for _, entry := range result.Entries() {
		row := entry.Row.(rows.Mapping)
		fmt.Printf("%-5d %-20v %-10v\n", entry.ID, row["name"], row["city"])
	}
	fmt.Println("----------------------------------------")
	fmt.Printf("%d of %d rows matched\n", result.Len(), collection.Len())
}
