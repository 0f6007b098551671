package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/gnio/contabilidad-api/internal/domain/documento"
	"github.com/gnio/contabilidad-api/internal/domain/entity"
	"github.com/gnio/contabilidad-api/internal/domain/repository"
	"github.com/google/uuid"
)

var _ repository.DocumentoRepository = (*DocumentoRepo)(nil)

// DocumentoRepo implementación de DocumentoRepository (usable con pool o tx).
type DocumentoRepo struct {
	q Querier
}

// NewDocumentoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentoRepository(q Querier) *DocumentoRepo {
	return &DocumentoRepo{q: q}
}

// Upsert crea o actualiza por identificador_unico. La actualización nunca
// toca empresa, operación, la llave ni el mes de trabajo.
func (r *DocumentoRepo) Upsert(doc *entity.Documento) error {
	if doc.UUID == "" {
		doc.UUID = uuid.New().String()
	}
	query := `
		INSERT INTO documentos (
			uuid, identificador_unico,
			serie, numero_dte, numero_autorizacion, fecha_emision, tipo_dte,
			nit_emisor, nombre_emisor, codigo_establecimiento, nombre_establecimiento,
			id_receptor, nombre_receptor, nit_certificador, nombre_certificador,
			moneda, monto_total, monto_bien, monto_servicio,
			factura_estado, marca_anulado, fecha_anulacion,
			iva, petroleo, turismo_hospedaje, turismo_pasajes, timbre_prensa,
			bomberos, tasa_municipal, bebidas_alcoholicas, bebidas_no_alcoholicas,
			tabaco, cemento, tarifa_portuaria,
			tipo_operacion, tipo, cuenta_debe, cuenta_debe2, cuenta_haber,
			empresa_id, fecha_trabajo, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28,
			$29, $30, $31, $32, $33, $34, $35, $36, $37, $38, $39, $40, $41, now()
		)
		ON CONFLICT (identificador_unico) DO UPDATE SET
			fecha_emision   = EXCLUDED.fecha_emision,
			monto_total     = EXCLUDED.monto_total,
			monto_bien      = EXCLUDED.monto_bien,
			monto_servicio  = EXCLUDED.monto_servicio,
			iva             = EXCLUDED.iva,
			petroleo        = EXCLUDED.petroleo,
			turismo_hospedaje = EXCLUDED.turismo_hospedaje,
			turismo_pasajes = EXCLUDED.turismo_pasajes,
			timbre_prensa   = EXCLUDED.timbre_prensa,
			bomberos        = EXCLUDED.bomberos,
			tasa_municipal  = EXCLUDED.tasa_municipal,
			bebidas_alcoholicas    = EXCLUDED.bebidas_alcoholicas,
			bebidas_no_alcoholicas = EXCLUDED.bebidas_no_alcoholicas,
			tabaco          = EXCLUDED.tabaco,
			cemento         = EXCLUDED.cemento,
			tarifa_portuaria = EXCLUDED.tarifa_portuaria,
			tipo            = EXCLUDED.tipo,
			cuenta_debe     = COALESCE(EXCLUDED.cuenta_debe, documentos.cuenta_debe),
			cuenta_debe2    = COALESCE(EXCLUDED.cuenta_debe2, documentos.cuenta_debe2),
			cuenta_haber    = COALESCE(EXCLUDED.cuenta_haber, documentos.cuenta_haber),
			factura_estado  = COALESCE(NULLIF(EXCLUDED.factura_estado, ''), documentos.factura_estado),
			marca_anulado   = COALESCE(EXCLUDED.marca_anulado, documentos.marca_anulado),
			fecha_anulacion = COALESCE(EXCLUDED.fecha_anulacion, documentos.fecha_anulacion)`
	_, err := r.q.Exec(context.Background(), query,
		doc.UUID, doc.IdentificadorUnico,
		nullIfEmpty(doc.Serie), doc.NumeroDte, nullIfEmpty(doc.NumeroAutorizacion),
		doc.FechaEmision, doc.TipoDte,
		nullIfEmpty(doc.NitEmisor), nullIfEmpty(doc.NombreEmisor),
		nullIfEmpty(doc.CodigoEstablecimiento), nullIfEmpty(doc.NombreEstablecimiento),
		nullIfEmpty(doc.IDReceptor), nullIfEmpty(doc.NombreReceptor),
		nullIfEmpty(doc.NitCertificador), nullIfEmpty(doc.NombreCertificador),
		doc.Moneda, doc.MontoTotal, doc.MontoBien, doc.MontoServicio,
		doc.FacturaEstado, doc.MarcaAnulado, doc.FechaAnulacion,
		doc.IVA, doc.Petroleo, doc.TurismoHospedaje, doc.TurismoPasajes, doc.TimbrePrensa,
		doc.Bomberos, doc.TasaMunicipal, doc.BebidasAlcoholicas, doc.BebidasNoAlcoholicas,
		doc.Tabaco, doc.Cemento, doc.TarifaPortuaria,
		string(doc.TipoOperacion), string(doc.Tipo),
		doc.CuentaDebe, doc.CuentaDebe2, doc.CuentaHaber,
		doc.EmpresaID, doc.FechaTrabajo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("documento ya cargado: %w", err)
		}
		return fmt.Errorf("upsert documento: %w", err)
	}
	return nil
}

// BuscarExistentes arma un solo query con el OR de las claves del lote.
// serie y numero_autorizacion usan IS NOT DISTINCT FROM para que el vacío
// (NULL en la tabla) también empareje.
func (r *DocumentoRepo) BuscarExistentes(claves []repository.ClaveDocumento) ([]*entity.Documento, error) {
	if len(claves) == 0 {
		return nil, nil
	}
	var preds []string
	var args []any
	for _, c := range claves {
		n := len(args)
		preds = append(preds, fmt.Sprintf(
			"(numero_dte = $%d AND serie IS NOT DISTINCT FROM $%d AND numero_autorizacion IS NOT DISTINCT FROM $%d)",
			n+1, n+2, n+3,
		))
		args = append(args, c.NumeroDte, nullIfEmpty(c.Serie), nullIfEmpty(c.NumeroAutorizacion))
	}
	query := `
		SELECT identificador_unico, COALESCE(serie, ''), numero_dte,
		       COALESCE(numero_autorizacion, ''), empresa_id,
		       COALESCE(nit_emisor, ''), fecha_trabajo
		FROM documentos
		WHERE ` + strings.Join(preds, " OR ")

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("buscar documentos existentes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Documento
	for rows.Next() {
		var d entity.Documento
		if err := rows.Scan(
			&d.IdentificadorUnico, &d.Serie, &d.NumeroDte,
			&d.NumeroAutorizacion, &d.EmpresaID, &d.NitEmisor, &d.FechaTrabajo,
		); err != nil {
			return nil, fmt.Errorf("scan documento existente: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Listar devuelve los documentos del mes por fecha de emisión o de trabajo.
// pageSize 0 trae el mes completo (exportaciones).
func (r *DocumentoRepo) Listar(filtro repository.FiltroDocumentos) ([]*entity.Documento, int64, error) {
	desde := filtro.Mes
	hasta := desde.AddDate(0, 1, 0)

	where := `
		WHERE empresa_id = $1
		  AND ((fecha_emision >= $2 AND fecha_emision < $3)
		    OR (fecha_trabajo >= $2 AND fecha_trabajo < $3))`
	args := []any{filtro.EmpresaID, desde, hasta}
	if filtro.Operacion != "" {
		where += " AND tipo_operacion = $4"
		args = append(args, string(filtro.Operacion))
	}

	var total int64
	if err := r.q.QueryRow(context.Background(), "SELECT COUNT(*) FROM documentos"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("contar documentos: %w", err)
	}

	query := `
		SELECT uuid, identificador_unico, COALESCE(serie, ''), numero_dte,
		       COALESCE(numero_autorizacion, ''), fecha_emision, tipo_dte,
		       COALESCE(nit_emisor, ''), COALESCE(nombre_emisor, ''),
		       moneda, monto_total, monto_bien, monto_servicio,
		       COALESCE(iva, 0), COALESCE(petroleo, 0),
		       COALESCE(turismo_hospedaje, 0), COALESCE(turismo_pasajes, 0),
		       COALESCE(timbre_prensa, 0), COALESCE(bomberos, 0),
		       COALESCE(tasa_municipal, 0), COALESCE(bebidas_alcoholicas, 0),
		       COALESCE(bebidas_no_alcoholicas, 0), COALESCE(tabaco, 0),
		       COALESCE(cemento, 0), COALESCE(tarifa_portuaria, 0),
		       tipo_operacion, tipo, cuenta_debe, cuenta_debe2, cuenta_haber,
		       empresa_id, fecha_trabajo
		FROM documentos` + where + `
		ORDER BY fecha_emision, serie, numero_dte`
	if filtro.PageSize > 0 {
		offset := (filtro.Page - 1) * filtro.PageSize
		if offset < 0 {
			offset = 0
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", filtro.PageSize, offset)
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listar documentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Documento
	for rows.Next() {
		var d entity.Documento
		var op, tipo string
		if err := rows.Scan(
			&d.UUID, &d.IdentificadorUnico, &d.Serie, &d.NumeroDte,
			&d.NumeroAutorizacion, &d.FechaEmision, &d.TipoDte,
			&d.NitEmisor, &d.NombreEmisor,
			&d.Moneda, &d.MontoTotal, &d.MontoBien, &d.MontoServicio,
			&d.IVA, &d.Petroleo,
			&d.TurismoHospedaje, &d.TurismoPasajes,
			&d.TimbrePrensa, &d.Bomberos,
			&d.TasaMunicipal, &d.BebidasAlcoholicas,
			&d.BebidasNoAlcoholicas, &d.Tabaco,
			&d.Cemento, &d.TarifaPortuaria,
			&op, &tipo, &d.CuentaDebe, &d.CuentaDebe2, &d.CuentaHaber,
			&d.EmpresaID, &d.FechaTrabajo,
		); err != nil {
			return nil, 0, fmt.Errorf("scan documento: %w", err)
		}
		d.TipoOperacion = documento.TipoOperacion(op)
		d.Tipo = documento.TipoFactura(tipo)
		list = append(list, &d)
	}
	return list, total, rows.Err()
}

// Rectificar aplica los campos no nulos. Los montos y la anulación quedan
// fuera a propósito.
func (r *DocumentoRepo) Rectificar(uuid string, campos repository.Rectificacion) (bool, error) {
	var op *string
	if campos.TipoOperacion != nil {
		s := string(*campos.TipoOperacion)
		op = &s
	}
	query := `
		UPDATE documentos
		SET fecha_emision  = COALESCE($2, fecha_emision),
		    tipo_operacion = COALESCE($3, tipo_operacion),
		    cuenta_debe    = COALESCE($4, cuenta_debe),
		    cuenta_debe2   = COALESCE($5, cuenta_debe2),
		    cuenta_haber   = COALESCE($6, cuenta_haber)
		WHERE uuid = $1`
	tag, err := r.q.Exec(context.Background(), query,
		uuid, campos.FechaEmision, op, campos.CuentaDebe, campos.CuentaDebe2, campos.CuentaHaber,
	)
	if err != nil {
		return false, fmt.Errorf("rectificar documento: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
