package main

import (
	"errors"
	"strconv"

	"portfolio-admin-server/global"
	"portfolio-admin-server/repository"
)

// Configure DB Repositories and create DB Selector
func ConfigDBSelector() repository.DBSelector {
	// configure Repository (couchDB)
	repoUrl := global.Conf.CouchDB.Scheme + "://" + global.Conf.CouchDB.Host + ":" + strconv.Itoa(global.Conf.CouchDB.Port)
	profileRepo, profileRepoErr := repository.NewCouchDBRepository(repoUrl, repository.Profile, global.Conf.CouchDB.Username, global.Conf.CouchDB.Password, false)
	projectRepo, projectRepoErr := repository.NewCouchDBRepository(repoUrl, repository.Projects, global.Conf.CouchDB.Username, global.Conf.CouchDB.Password, false)
	skillRepo, skillRepoErr := repository.NewCouchDBRepository(repoUrl, repository.Skills, global.Conf.CouchDB.Username, global.Conf.CouchDB.Password, false)
	contactRepo, contactRepoErr := repository.NewCouchDBRepository(repoUrl, repository.Contacts, global.Conf.CouchDB.Username, global.Conf.CouchDB.Password, false)

	repoErr := errors.Join(profileRepoErr, projectRepoErr, skillRepoErr, contactRepoErr)
	if repoErr != nil {
		global.Logger.Log("error", "Failed to create repositories", "error", repoErr.Error())
		panic(repoErr)
	}

	// REPOSITORY definitions
	dbSelector := repository.NewCouchDBSelector()
	dbSelector.AddDB(profileRepo)
	dbSelector.AddDB(projectRepo)
	dbSelector.AddDB(skillRepo)
	dbSelector.AddDB(contactRepo)

	return dbSelector
}

// ConfigDBIndexing creates the mango indexes the newest-first listings sort on.
func ConfigDBIndexing(dbSelector *repository.CouchDBSelector) {
	for _, dbName := range []string{repository.Projects, repository.Skills, repository.Contacts} {
		repo, rErr := dbSelector.ChooseDB(dbName)
		if rErr != nil {
			panic(rErr)
		}
		if iErr := repository.CreateCreatedDescIndex(repo); iErr != nil {
			panic(iErr)
		}
	}
}
