package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/bitmark-inc/volunteer-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("volunteer")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetDefault("orm.migrations", "./schema/migrations")
}

func main() {
	var dir string
	flag.StringVar(&dir, "d", "", "[optional] directory of migration files")
	flag.Parse()

	if dir == "" {
		dir = viper.GetString("orm.migrations")
	}

	if err := schema.Migrate(viper.GetString("orm.conn"), dir); err != nil {
		panic(err)
	}

	fmt.Println("database migrated")
}
