package main

import (
	"chat-mapper/mapper"
	"chat-mapper/store"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

const maxValueWidth = 48

func main() {
	driver := flag.String("driver", store.DriverBadger, "Store driver (badger or sqlite)")
	path := flag.String("db", "", "Path to the store")
	typeName := flag.String("type", "", "Entity type to list, all types when empty")
	flag.Parse()

	s, err := store.Open(store.Options{Driver: *driver, Path: *path}, logs.GetLoggerFromLevel(slog.LevelError))
	if err != nil {
		log.Fatal("Error while opening store: ", err)
	}
	defer s.Close()

	types := []string{mapper.TypeUser, mapper.TypeIndividualContact, mapper.TypeGroup, mapper.TypeMessage}
	if *typeName != "" {
		types = []string{*typeName}
	}

	for _, t := range types {
		entities, err := s.FetchEntitiesByType(t)
		if err != nil {
			log.Fatal(err)
		}
		color.Cyan.Printf("%s (%d)\n", t, len(entities))
		render(entities)
	}
}

func render(entities []store.Entity) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Property", "Value"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, e := range entities {
		id := strconv.FormatInt(e.ID, 10)
		for _, p := range e.Properties {
			table.Append([]string{id, p.Name, truncate(p.Value)})
			id = ""
		}
	}
	table.Render()
	fmt.Println()
}

func truncate(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	if len(value) > maxValueWidth {
		return value[:maxValueWidth] + "..."
	}
	return value
}
