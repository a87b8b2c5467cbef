// FILE: bouquet/example/main.go
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/bouquet/config"
	"github.com/lixenwraith/bouquet/email"
	"github.com/lixenwraith/bouquet/file"
)

// AppConfig is bound from app.yaml.
type AppConfig struct {
	Server struct {
		Host    string        `yaml:"host"`
		Port    int           `yaml:"port"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"server"`
	Features []string `yaml:"features"`
}

// CacheConfig is bound from cache.toml.
type CacheConfig struct {
	Size int           `toml:"size"`
	TTL  time.Duration `toml:"ttl"`
}

const appYAML = `server:
  host: localhost
  port: 8080
  timeout: 15s
features: [metrics, tracing]
`

const cacheTOML = `size = 512
ttl = "5m"
`

const legacyProperties = `# legacy settings
db.url = jdbc:postgresql://localhost/app
db.pool = 8
`

const emailYAML = `smtp-host: localhost
smtp-port: 2525
`

func main() {
	// =========================================================================
	// PART 1: SETUP
	// Write a few configuration files into a scratch directory.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 1: Writing configuration files...")

	dir, err := os.MkdirTemp("", "bouquet-example-")
	if err != nil {
		log.Fatalf("❌ Failed to create scratch directory: %v", err)
	}
	defer func() {
		log.Println("---")
		log.Println("🧹 Cleaning up...")
		if err := file.New(dir).DeleteDirectory(); err != nil {
			log.Printf("⚠️  Cleanup failed: %v", err)
		}
	}()

	files := map[string]string{
		"app.yaml":          appYAML,
		"cache.toml":        cacheTOML,
		"legacy.properties": legacyProperties,
		"email-client.yaml": emailYAML,
	}
	for name, content := range files {
		if err := file.New(filepath.Join(dir, name)).WriteText(content); err != nil {
			log.Fatalf("❌ Failed to write %s: %v", name, err)
		}
	}
	log.Printf("✅ Configuration written to %s", dir)

	// =========================================================================
	// PART 2: FINDING AND READING CONFIGURATION
	// The scratch directory is put first in the search list, as eds.config would.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 2: Reading configuration through a Finder...")

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	finder, err := config.NewBuilder().
		WithProcessConfig(filepath.Join(dir, "%s")).
		WithLogger(logger).
		Build()
	if err != nil {
		log.Fatalf("❌ Builder failed: %v", err)
	}
	log.Printf("   Search list: %v", finder.Paths())

	raw, err := finder.AsMap("app.yaml")
	if err != nil {
		log.Fatalf("❌ AsMap failed: %v", err)
	}
	log.Printf("✅ app.yaml as map: %v", raw.Map())

	app, err := config.AsStruct[AppConfig](finder, "app.yaml")
	if err != nil {
		log.Fatalf("❌ AsStruct failed: %v", err)
	}
	printAppConfig(app)

	var cache CacheConfig
	if err := finder.Scan("cache.toml", &cache); err != nil {
		log.Fatalf("❌ Scan failed: %v", err)
	}
	log.Printf("✅ cache.toml: size=%d ttl=%s", cache.Size, cache.TTL)

	props, err := finder.AsProperties("legacy.properties")
	if err != nil {
		log.Fatalf("❌ AsProperties failed: %v", err)
	}
	log.Printf("✅ legacy.properties: db.url=%s db.pool=%d",
		props.GetString("db.url", ""), props.GetInt("db.pool", 0))

	if _, err := finder.Raw("missing.yaml"); err != nil {
		log.Printf("✅ Expected failure for missing.yaml: %v", err)
	}

	// =========================================================================
	// PART 3: COMPOSING EMAIL
	// The SMTP client is configured from email-client.yaml. The message is
	// written to disk rather than sent.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 3: Composing an email...")

	client, err := email.ConfiguredClient(finder, email.WithLogger(logger))
	if err != nil {
		log.Fatalf("❌ Email client failed: %v", err)
	}
	log.Printf("✅ SMTP relay %s (auth: %t)", client.Settings().Address(), client.AuthEnabled())

	msg, err := email.BuildMessage(email.Email{
		From:    "reports@example.com",
		To:      []string{"team@example.com"},
		Subject: "Configuration report",
		HTML:    fmt.Sprintf("<p>Server listens on %s:%d</p>", app.Server.Host, app.Server.Port),
		Attachments: []email.Attachment{
			{Filename: "app.yaml", MimeType: "application/yaml", Data: []byte(appYAML)},
		},
	})
	if err != nil {
		log.Fatalf("❌ BuildMessage failed: %v", err)
	}

	var eml bytes.Buffer
	if _, err := msg.WriteTo(&eml); err != nil {
		log.Fatalf("❌ Message rendering failed: %v", err)
	}

	out := file.New(filepath.Join(dir, "outbox", "report.eml"))
	if err := out.WriteFrom(&eml); err != nil {
		log.Fatalf("❌ Failed to store message: %v", err)
	}
	log.Printf("✅ Message stored at %s", out)

	// =========================================================================
	// PART 4: FILE HANDLES
	// Hide the stored message, move it to an archive and restore its name.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 4: Working with file handles...")

	hidden, err := out.Hide()
	if err != nil {
		log.Fatalf("❌ Hide failed: %v", err)
	}
	log.Printf("   Hidden as %s", hidden.Name())

	archived, err := hidden.Move(filepath.Join(dir, "archive", time.Now().Format("2006-01-02")), true, false)
	if err != nil {
		log.Fatalf("❌ Move failed: %v", err)
	}

	restored, err := archived.Unhide()
	if err != nil {
		log.Fatalf("❌ Unhide failed: %v", err)
	}
	log.Printf("✅ Archived as %s", restored)
}

func printAppConfig(cfg AppConfig) {
	fmt.Println("   --------------------------------------------------")
	fmt.Println("             app.yaml")
	fmt.Println("   --------------------------------------------------")
	fmt.Printf("     Server Host:    %s\n", cfg.Server.Host)
	fmt.Printf("     Server Port:    %d\n", cfg.Server.Port)
	fmt.Printf("     Server Timeout: %s\n", cfg.Server.Timeout)
	fmt.Printf("     Features:       %v\n", cfg.Features)
	fmt.Println("   --------------------------------------------------")
}
