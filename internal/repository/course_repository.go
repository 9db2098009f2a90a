package repository

import (
	"github.com/finversity/finversity-backend/internal/models"
	"gorm.io/gorm"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

func (r *CourseRepository) GetAll() ([]models.Course, error) {
	var courses []models.Course
	err := r.db.Order("created_at DESC").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) GetByID(id uint) (*models.Course, error) {
	var course models.Course
	err := r.db.Preload("Modules", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).First(&course, id).Error
	return &course, err
}

func (r *CourseRepository) Create(course *models.Course) error {
	return r.db.Create(course).Error
}

func (r *CourseRepository) Update(course *models.Course) error {
	return r.db.Save(course).Error
}

func (r *CourseRepository) Delete(id uint) error {
	return r.db.Delete(&models.Course{}, id).Error
}

func (r *CourseRepository) GetModulesByCourse(courseID uint) ([]models.CourseModule, error) {
	var modules []models.CourseModule
	err := r.db.Where("course_id = ?", courseID).Order("position ASC").Find(&modules).Error
	return modules, err
}

func (r *CourseRepository) GetModuleByID(id uint) (*models.CourseModule, error) {
	var module models.CourseModule
	err := r.db.First(&module, id).Error
	return &module, err
}

func (r *CourseRepository) CreateModule(module *models.CourseModule) error {
	return r.db.Create(module).Error
}

func (r *CourseRepository) UpdateModule(module *models.CourseModule) error {
	return r.db.Save(module).Error
}

func (r *CourseRepository) DeleteModule(id uint) error {
	return r.db.Delete(&models.CourseModule{}, id).Error
}
