// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./repository.go -destination=../mocks/mock_transactor.go -package=mocks Transactor
//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./ukm.go -destination=../mocks/mock_ukm_repository.go -package=mocks UKMRepositoryIface
//go:generate mockgen -source=./kegiatan.go -destination=../mocks/mock_kegiatan_repository.go -package=mocks KegiatanRepositoryIface
//go:generate mockgen -source=./laporan.go -destination=../mocks/mock_laporan_repository.go -package=mocks LaporanRepositoryIface
//go:generate mockgen -source=./anggota.go -destination=../mocks/mock_anggota_repository.go -package=mocks AnggotaRepositoryIface
//go:generate mockgen -source=./komentar.go -destination=../mocks/mock_komentar_repository.go -package=mocks KomentarRepositoryIface
//go:generate mockgen -source=./registration.go -destination=../mocks/mock_registration_repository.go -package=mocks RegistrationRepositoryIface
