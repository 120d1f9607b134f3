package repository

import "gorm.io/gorm"

// Migrate runs auto-migration for every table
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&DinasModel{},
		&SekolahModel{},
		&SiswaModel{},
		&JalurModel{},
		&TahunAjaranModel{},
		&KuotaModel{},
		&PendaftaranModel{},
		&PengumumanModel{},
		&BeritaModel{},
	)
}
