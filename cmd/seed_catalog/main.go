// seed_catalog genera el script SQL que pobla products y payment_terms a partir de
// una exportación CSV del punto de venta (separada por ';', codificada en ISO-8859-1).
//
// Columnas: product_name;product_code;sales_price;sales_tax_percentage;current_stock
// El costo se estima en el 60% del precio y el stock mínimo en 5, igual que el catálogo
// de demostración.
//
// Uso: go run ./cmd/seed_catalog [ruta/catalogo.csv]
// Por defecto busca catalogo.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_catalog.sql
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/profit-simulator/pkg/money"
)

var (
	costRatio    = decimal.RequireFromString("0.6")
	minimumStock = decimal.NewFromInt(5)
)

type catalogRow struct {
	name    string
	code    string
	price   decimal.Decimal
	taxPct  decimal.Decimal
	stock   decimal.Decimal
	lineNum int
}

// Condiciones de pago por defecto.
var defaultTerms = []struct {
	name    string
	netDays int
}{
	{"Immediate Payment", 0},
	{"Net 15", 15},
	{"Net 30", 30},
	{"Net 45", 45},
}

func main() {
	csvPath := "catalogo.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, err := parseCatalog(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "002_seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d productos, %d condiciones de pago\n", outPath, len(rows), len(defaultTerms))
}

// parseCatalog lee el CSV ya decodificado a UTF-8. La primera fila es cabecera.
// Montos con coma decimal ("1499,90") se aceptan.
func parseCatalog(r io.Reader) ([]catalogRow, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = 5
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		return nil, fmt.Errorf("cabecera: %w", err)
	}

	var rows []catalogRow
	seen := make(map[string]int)
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		row := catalogRow{name: strings.TrimSpace(rec[0]), code: strings.TrimSpace(rec[1]), lineNum: line}
		if row.name == "" || row.code == "" {
			return nil, fmt.Errorf("línea %d: nombre y código son requeridos", line)
		}
		if prev, ok := seen[row.code]; ok {
			return nil, fmt.Errorf("línea %d: código %s repetido (línea %d)", line, row.code, prev)
		}
		seen[row.code] = line

		if row.price, err = parseAmount(rec[2]); err != nil {
			return nil, fmt.Errorf("línea %d: precio: %w", line, err)
		}
		if row.taxPct, err = parseAmount(rec[3]); err != nil {
			return nil, fmt.Errorf("línea %d: impuesto: %w", line, err)
		}
		if row.taxPct.IsNegative() || row.taxPct.GreaterThan(decimal.NewFromInt(100)) {
			return nil, fmt.Errorf("línea %d: impuesto fuera de rango: %s", line, row.taxPct)
		}
		if row.stock, err = parseAmount(rec[4]); err != nil {
			return nil, fmt.Errorf("línea %d: stock: %w", line, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	return money.Parse(strings.ReplaceAll(strings.TrimSpace(s), ",", "."))
}

func writeSQL(w io.Writer, rows []catalogRow) error {
	var b strings.Builder
	b.WriteString("-- Catálogo inicial del simulador\n")
	b.WriteString("-- Generado por cmd/seed_catalog\n\n")

	b.WriteString("-- 1. Condiciones de pago\n")
	b.WriteString("INSERT INTO payment_terms (term_name, net_days, early_payment_discount, is_active) VALUES\n")
	for i, t := range defaultTerms {
		fmt.Fprintf(&b, "  ('%s', %d, FALSE, TRUE)%s\n", escapeSQL(t.name), t.netDays, sep(i, len(defaultTerms)))
	}
	b.WriteString("ON CONFLICT (term_name) DO NOTHING;\n\n")

	if len(rows) > 0 {
		b.WriteString("-- 2. Productos\n")
		b.WriteString("INSERT INTO products (product_name, product_code, sales_price, purchase_price, sales_tax_percentage, current_stock, minimum_stock, is_active) VALUES\n")
		for i, r := range rows {
			fmt.Fprintf(&b, "  ('%s', '%s', %s, %s, %s, %s, %s, TRUE)%s\n",
				escapeSQL(r.name), escapeSQL(r.code),
				money.Round(r.price).StringFixed(2),
				money.Round(r.price.Mul(costRatio)).StringFixed(2),
				r.taxPct.StringFixed(2),
				money.RoundQuantity(r.stock).StringFixed(3),
				minimumStock.StringFixed(3),
				sep(i, len(rows)),
			)
		}
		b.WriteString("ON CONFLICT (product_code) DO UPDATE SET\n")
		b.WriteString("  product_name = EXCLUDED.product_name,\n")
		b.WriteString("  sales_price = EXCLUDED.sales_price,\n")
		b.WriteString("  sales_tax_percentage = EXCLUDED.sales_tax_percentage,\n")
		b.WriteString("  current_stock = EXCLUDED.current_stock;\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func sep(i, n int) string {
	if i < n-1 {
		return ","
	}
	return ""
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
