package services

import (
	"Launchbox/internal/config"
	"Launchbox/internal/repository"
	"errors"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Janitor hard-purges soft-deleted project subtrees and compacts the access
// history to its cap on a cron schedule.
type Janitor struct {
	projectRepo   repository.ProjectRepository
	historyRepo   repository.HistoryRepository
	configuration *config.Configuration
	logService    LogService
	cleaning      bool
	mutex         sync.Mutex
	cron          *cron.Cron
}

func NewJanitorService(
	projectRepo repository.ProjectRepository,
	historyRepo repository.HistoryRepository,
	logService LogService,
	configuration *config.Configuration,
) *Janitor {
	return &Janitor{
		projectRepo:   projectRepo,
		historyRepo:   historyRepo,
		logService:    logService,
		configuration: configuration,
		cron:          cron.New(),
	}
}

func (j *Janitor) ForceStartCleanCycle() error {
	j.mutex.Lock()
	if j.cleaning {
		j.mutex.Unlock()
		return errors.New("cleaning is in progress")
	}
	j.cleaning = true
	j.mutex.Unlock()

	go func() {
		defer func() {
			j.mutex.Lock()
			j.cleaning = false
			j.mutex.Unlock()
		}()
		j.startClean(true)
	}()

	return nil
}

func (j *Janitor) StartCleanCycle() {
	cronSchedule := j.configuration.Server.CleanConfig.Schedule
	_, err := j.cron.AddFunc(cronSchedule, func() {
		j.mutex.Lock()
		if j.cleaning {
			j.mutex.Unlock()
			return
		}
		j.cleaning = true
		j.mutex.Unlock()

		defer func() {
			j.mutex.Lock()
			j.cleaning = false
			j.mutex.Unlock()
		}()
		j.startClean(false)
	})
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "clean",
			"error": err.Error(),
		}).Error("Failed to start cleaning job")
	}
	j.cron.Start()
}

func (j *Janitor) StopClean() {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	j.cron.Stop()
	j.cleaning = false
	j.logService.Log.WithFields(logrus.Fields{
		"job":    "clean",
		"status": "stopped",
	}).Info("Janitor clean stopped")
}

func (j *Janitor) IsCleaning() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return j.cleaning
}

func (j *Janitor) startClean(forced bool) {
	projects, err := j.projectRepo.FindDeleted()
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "clean",
			"status": "error",
			"error":  err.Error(),
		}).Error("Failed to find deleted projects")
		return
	}

	if len(projects) > 0 {
		var logFields logrus.Fields
		if forced {
			logFields = logrus.Fields{"job": "clean", "status": "forced"}
		} else {
			logFields = logrus.Fields{
				"job":    "clean",
				"status": "start",
				"cron":   j.configuration.Server.CleanConfig.Schedule,
			}
		}
		j.logService.Log.WithFields(logFields).Infof("Found %d projects to purge", len(projects))
	}

	var purgedCount int
	for _, project := range projects {
		if err := j.projectRepo.HardDeleteSubtree(project.ID); err != nil {
			j.logService.Log.WithFields(logrus.Fields{
				"job":     "clean",
				"status":  "error",
				"project": project.Name,
				"error":   err.Error(),
			}).Error("Failed to purge project")
			continue
		}
		purgedCount++
	}

	if err := j.historyRepo.Prune(j.configuration.History.MaxEntries); err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "clean",
			"status": "error",
			"error":  err.Error(),
		}).Error("Failed to prune access history")
	}

	if purgedCount > 0 {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "clean",
			"status": "success",
			"count":  purgedCount,
		}).Info("cleaning job finished")
	}
}
