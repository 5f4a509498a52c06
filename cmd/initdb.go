package main

import (
	"fmt"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"portfolio-admin-server/global"
	"portfolio-admin-server/repository"
)

func init() {
	rootCmd.AddCommand(initDbCmd)
}

// initDbCmd creates the resource databases and their sort indexes. Creating
// a repository creates its database when missing, so running this against a
// fresh CouchDB leaves everything the server needs in place.
var initDbCmd = &cobra.Command{
	Use:   "initdb",
	Short: "Create the resource databases and indexes",
	Long:  "Create the profile, projects, skills and contacts databases in CouchDB together with the created-desc indexes the listings sort on.",
	Run: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		global.LoadFromEnv()

		repoUrl := global.Conf.CouchDB.Scheme + "://" + global.Conf.CouchDB.Host + ":" + strconv.Itoa(global.Conf.CouchDB.Port)
		for _, dbName := range []string{repository.Profile, repository.Projects, repository.Skills, repository.Contacts} {
			repo, err := repository.NewCouchDBRepository(repoUrl, dbName, global.Conf.CouchDB.Username, global.Conf.CouchDB.Password, false)
			check(err)
			fmt.Printf("database %q ready\n", dbName)

			if dbName == repository.Profile {
				// the singleton profile is fetched by its fixed id, no index needed
				continue
			}
			check(repository.CreateCreatedDescIndex(repo))
			fmt.Printf("index created-desc on %q ready\n", dbName)
		}
	},
}
