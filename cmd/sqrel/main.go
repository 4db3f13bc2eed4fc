package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kielby/sqrel/pkg/core"
)

var (
	dbPath  string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sqrel",
	Short: "CLI tool for schema-typed SQLite table files",
	Long:  `A command-line interface for inspecting and seeding sqrel database files.`,
}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List tables in the database file",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		for _, name := range db.Tables() {
			t, err := db.Get(name)
			if err != nil {
				return err
			}
			fmt.Printf("%s\t%d rows\n", name, t.Len())
		}
		return nil
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema <table>",
	Short: "Show a table's fields and declared types",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		t, err := db.Get(args[0])
		if err != nil {
			return err
		}
		for _, f := range t.Fields() {
			fmt.Printf("%s\t%s\n", f.Name, f.Type)
		}
		return nil
	},
}

var rowsCmd = &cobra.Command{
	Use:   "rows <table>",
	Short: "Print a table's rows",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		asJSON, _ := cmd.Flags().GetBool("json")

		db, err := openDatabase()
		if err != nil {
			return err
		}
		t, err := db.Get(args[0])
		if err != nil {
			return err
		}

		for _, row := range t.Find(nil, limit) {
			values := row.GetAll()
			if asJSON {
				data, err := json.Marshal(values)
				if err != nil {
					return fmt.Errorf("failed to render row: %w", err)
				}
				fmt.Println(string(data))
				continue
			}
			for _, f := range t.Fields() {
				if v, ok := values[f.Name]; ok {
					fmt.Printf("%s=%v\t", f.Name, v)
				}
			}
			fmt.Println()
		}
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write a small demo database to the file",
	RunE: func(cmd *cobra.Command, args []string) error {
		db := newDatabase()

		users, err := db.Create("users", []core.Field{
			{Name: "id", Type: core.TypeText},
			{Name: "name", Type: core.TypeText},
			{Name: "age", Type: core.TypeInteger},
			{Name: "tags", Type: core.TypeComposite},
		})
		if err != nil {
			return err
		}

		samples := []map[string]any{
			{"name": "Alice", "age": 30, "tags": []any{"admin", "staff"}},
			{"name": "Bob", "age": 41, "tags": []any{"staff"}},
			{"name": "Carol", "age": 27, "tags": []any{}},
		}
		for _, s := range samples {
			s["id"] = uuid.New().String()
			if err := users.AddRow(s); err != nil {
				return err
			}
		}

		if err := db.Save(context.Background()); err != nil {
			return err
		}
		fmt.Printf("Seeded %d rows into %s\n", users.Len(), dbPath)
		return nil
	},
}

func newDatabase() *core.Database {
	config := core.DefaultConfig(dbPath)
	if verbose {
		config.Logger = core.NewStdLogger(core.LevelDebug)
	}
	return core.NewWithConfig(config)
}

func openDatabase() (*core.Database, error) {
	db := newDatabase()
	if err := db.Load(context.Background()); err != nil {
		return nil, err
	}
	return db, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "sqrel.db", "Database file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	rowsCmd.Flags().Int("limit", 0, "Maximum rows to print (0 for all)")
	rowsCmd.Flags().Bool("json", false, "Output rows as JSON")

	rootCmd.AddCommand(
		tablesCmd,
		schemaCmd,
		rowsCmd,
		seedCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
