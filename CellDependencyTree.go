package main

import (
	"bytes"
	"errors"
	"go.etcd.io/bbolt"
)

type CellDependencyTree struct{}

const Delimiter = byte(0x00)

var bucketPrefix = [4]byte{'_', '_', 'd', '_'}

func (t *CellDependencyTree) SetDependsOn(tx *bbolt.Tx, sheetId []byte, dependantCellId string, dependingOnCellIds []string) (err error) {
	cellDependingListKey := t.makeDependingListKey(dependantCellId)

	bucketId := t.makeBucketId(sheetId)
	var bucket *bbolt.Bucket
	bucket, err = tx.CreateBucketIfNotExists(bucketId)
	if err != nil {
		return err
	}

	previousDependingListToDelete := map[string]bool{}
	previous := bucket.Get(cellDependingListKey)
	if previous != nil {
		for _, oldDependingOnCellId := range bytes.Split(previous, []byte{Delimiter}) {
			previousDependingListToDelete[string(oldDependingOnCellId)] = true
		}
	}

	addedRecords := false
	for _, dependingOnCellId := range dependingOnCellIds {
		if previousDependingListToDelete[dependingOnCellId] {
			// edge already stored, keep it
			delete(previousDependingListToDelete, dependingOnCellId)
		} else {
			addedRecords = true
			err = bucket.Put(t.makeDependantKey(dependantCellId, dependingOnCellId), []byte{})
			if err != nil {
				return err
			}
		}
	}

	if !addedRecords && len(previousDependingListToDelete) == 0 {
		return nil
	}

	// sever stale edges
	for oldDependingOnCellId := range previousDependingListToDelete {
		err = bucket.Delete(t.makeDependantKey(dependantCellId, oldDependingOnCellId))
		if err != nil {
			return err
		}
	}

	if len(dependingOnCellIds) == 0 {
		return bucket.Delete(cellDependingListKey)
	}

	newDependingOnCellIds := make([][]byte, 0, len(dependingOnCellIds))
	for _, dependingOnCellId := range dependingOnCellIds {
		newDependingOnCellIds = append(newDependingOnCellIds, []byte(dependingOnCellId))
	}
	return bucket.Put(cellDependingListKey, bytes.Join(newDependingOnCellIds, []byte{Delimiter}))
}

func (t *CellDependencyTree) GetDirectDependants(tx *bbolt.Tx, sheetId []byte, dependingOnCellId string) []string {
	bucket := tx.Bucket(t.makeBucketId(sheetId))
	if bucket == nil {
		return []string{}
	}

	return t.fetchCellDependants(bucket, dependingOnCellId)
}

func (t *CellDependencyTree) GetDependants(tx *bbolt.Tx, sheetId []byte, dependingOnCellId string) []string {
	bucket := tx.Bucket(t.makeBucketId(sheetId))
	if bucket == nil {
		return []string{}
	}

	return t.fetchDependantsRecursive(bucket, dependingOnCellId, map[string]bool{
		dependingOnCellId: true,
	})
}

func (t *CellDependencyTree) DropSheet(tx *bbolt.Tx, sheetId []byte) error {
	err := tx.DeleteBucket(t.makeBucketId(sheetId))
	if errors.Is(err, bbolt.ErrBucketNotFound) {
		return nil
	}
	return err
}

func (t *CellDependencyTree) makeBucketId(sheetId []byte) []byte {
	if len(sheetId) == 0 {
		return nil
	}

	return append(bucketPrefix[:], sheetId...)
}

func (t *CellDependencyTree) fetchDependantsRecursive(bucket *bbolt.Bucket, dependingOnCellId string, alreadyFetched map[string]bool) []string {
	dependants := t.fetchCellDependants(bucket, dependingOnCellId)

	for _, dependantCellId := range dependants {
		if !alreadyFetched[dependantCellId] {
			alreadyFetched[dependantCellId] = true
			dependants = append(dependants, t.fetchDependantsRecursive(bucket, dependantCellId, alreadyFetched)...)
		}
	}

	return dependants
}

func (t *CellDependencyTree) fetchCellDependants(bucket *bbolt.Bucket, dependingOnCellId string) []string {
	dependantCellIds := make([]string, 0, 5)
	c := bucket.Cursor()

	prefix := t.makeDependingOnPrefixKey(dependingOnCellId)
	prefixLength := len(prefix)
	for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
		dependantCellIds = append(dependantCellIds, string(k[prefixLength:]))
	}

	return dependantCellIds
}

func (t *CellDependencyTree) makeDependingListKey(dependantCellId string) []byte {
	return append(
		[]byte{Delimiter, Delimiter},
		[]byte(dependantCellId)...,
	)
}

func (t *CellDependencyTree) makeDependingOnPrefixKey(dependingOnCellId string) []byte {
	return append([]byte(dependingOnCellId), Delimiter)
}

func (t *CellDependencyTree) makeDependantKey(dependantCellId string, dependingOnCellId string) []byte {
	return append(t.makeDependingOnPrefixKey(dependingOnCellId), []byte(dependantCellId)...)
}

/** Terms:
 * dependant of X: a cell whose formula reads X (X's dependent-set holds it)
 * depending on X: the cells X's formula reads
 */
