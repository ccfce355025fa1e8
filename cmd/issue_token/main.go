// issue_token emite un JWT para consumir /api cuando JWT_SECRET está configurado.
//
// Uso: go run ./cmd/issue_token -sub analista@tienda -role sales
// Toma JWT_SECRET, JWT_ISSUER y JWT_EXPIRATION_MINUTES de la misma configuración que la API.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/profit-simulator/pkg/config"
	pkgjwt "github.com/jhoicas/profit-simulator/pkg/jwt"
)

func main() {
	subject := flag.String("sub", "", "subject del token (usuario o servicio)")
	role := flag.String("role", "", "rol opcional")
	minutes := flag.Int("exp", 0, "minutos de vigencia (0 = JWT_EXPIRATION_MINUTES)")
	flag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "-sub es requerido")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.JWT.Secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET no está configurado; la API no exige token")
		os.Exit(1)
	}

	exp := cfg.JWT.Expiration
	if *minutes > 0 {
		exp = *minutes
	}
	tok, err := pkgjwt.Generate(cfg.JWT.Secret, *subject, *role, cfg.JWT.Issuer, exp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
